package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const archiveFolder = "snapshots"

// CloudStorageClient uploads snapshot exports to a GCS bucket.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient opens a client for bucketName. opts carry the
// credentials, usually from firebase.Credentials.ClientOptions.
func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// ArchiveName returns the object name of an export taken at t.
func ArchiveName(t time.Time) string {
	return fmt.Sprintf("%s/%s-%s.json", archiveFolder, t.UTC().Format("20060102150405"), uuid.New().String())
}

// UploadSnapshotArchive writes a JSON export and returns its gs:// URL.
func (c *CloudStorageClient) UploadSnapshotArchive(ctx context.Context, archive io.Reader) (string, error) {
	name := ArchiveName(time.Now())

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = "application/json"
	wc.CacheControl = "no-store"

	if _, err := io.Copy(wc, archive); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("failed to copy archive to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	return fmt.Sprintf("gs://%s/%s", c.bucketName, name), nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
