package connection

import (
	"context"
	"fmt"

	"matchapp/config"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// FBConnection initializes the Firebase app once and hands back the
// Firestore client and the default storage bucket.
func FBConnection(cfg *config.Config) (*firestore.Client, *storage.BucketHandle, error) {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx,
		&firebase.Config{StorageBucket: cfg.StorageBucket},
		option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting Storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, nil, fmt.Errorf("error getting default bucket: %w", err)
	}

	fmt.Println("Firestore connection successful")
	return client, bucket, nil
}
