package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"choukette/pkg/logger"
)

// Credentials selects how the Firebase app authenticates. JSON wins over
// Path; with neither, application default credentials are used.
type Credentials struct {
	JSON string
	Path string
}

// ClientOptions translates the credentials into Google API client options.
func (c Credentials) ClientOptions() ([]option.ClientOption, error) {
	if c.JSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(c.JSON))}, nil
	}
	if c.Path != "" {
		if _, err := os.Stat(c.Path); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account file does not exist: %s", c.Path)
		}
		logger.Info("Using Firebase service account from file: %s", c.Path)
		return []option.ClientOption{option.WithCredentialsFile(c.Path)}, nil
	}
	logger.Info("Using application default credentials for Firebase")
	return nil, nil
}

// NewFirestoreClient initializes the Firebase app for projectID and returns
// its Firestore client.
func NewFirestoreClient(ctx context.Context, projectID string, creds Credentials) (*firestore.Client, error) {
	opts, err := creds.ClientOptions()
	if err != nil {
		return nil, err
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	return client, nil
}
