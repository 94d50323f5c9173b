package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"jusgestor-backend-go/internal/config"
)

// Clients bundles the Firebase-backed clients the application uses.
// It is built once in the composition root and passed by reference;
// there are no package-level globals.
type Clients struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Bucket    *gcs.BucketHandle
}

// InitClients initializes the Firebase Admin SDK and returns the
// Firestore, Auth and Storage clients. Credentials come from a service
// account file path, a base64-encoded service account JSON, or
// Application Default Credentials, in that order of preference.
func InitClients(ctx context.Context, cfg *config.Config) (*Clients, error) {
	if cfg == nil {
		return nil, fmt.Errorf("InitClients: cfg cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case cfg.GoogleApplicationCredentials != "":
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleApplicationCredentials))
	case cfg.FirebaseServiceAccountJSONBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	}
	// Otherwise rely on ADC, the default on GCP runtimes.

	fbCfg := &firebase.Config{
		ProjectID:     cfg.FirebaseProjectID,
		StorageBucket: cfg.StorageBucket,
	}

	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Auth: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("app.Storage: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("storage.DefaultBucket: %w", err)
	}

	return &Clients{
		Firestore: fsClient,
		Auth:      authClient,
		Bucket:    bucket,
	}, nil
}

// Close releases the underlying Firestore connection.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
