package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"choukette/internal/domain/repository"
	"choukette/pkg/errors"
)

const snapshotCollection = "snapshots"

type snapshotDoc struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type firestoreSnapshotRepository struct {
	client *firestore.Client
}

func NewFirestoreSnapshotRepository(client *firestore.Client) repository.SnapshotRepository {
	return &firestoreSnapshotRepository{
		client: client,
	}
}

func (r *firestoreSnapshotRepository) Get(ctx context.Context, key string) (string, error) {
	doc, err := r.client.Collection(snapshotCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", errors.NotFound("Snapshot", err)
		}
		return "", errors.Internal("Failed to get snapshot", err)
	}

	var s snapshotDoc
	if err := doc.DataTo(&s); err != nil {
		return "", errors.Internal("Failed to parse snapshot data", err)
	}
	return s.Value, nil
}

func (r *firestoreSnapshotRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.client.Collection(snapshotCollection).Doc(key).Set(ctx, snapshotDoc{
		Value:     value,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return errors.Internal("Failed to save snapshot", err)
	}
	return nil
}

func (r *firestoreSnapshotRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for _, k := range keys {
			if err := tx.Delete(r.client.Collection(snapshotCollection).Doc(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to delete snapshots", err)
	}
	return nil
}

func (r *firestoreSnapshotRepository) List(ctx context.Context) ([]string, error) {
	iter := r.client.Collection(snapshotCollection).DocumentRefs(ctx)

	var keys []string
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate snapshots", err)
		}
		keys = append(keys, ref.ID)
	}
	return keys, nil
}
