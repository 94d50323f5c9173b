// Package storage uploads binary objects (profile photos, process
// documents) to the office's storage bucket under generated paths.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error)
}

// BucketUploader implements Uploader over a GCS bucket handle obtained
// from the Firebase app.
type BucketUploader struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewBucketUploader wraps a bucket handle. bucketName is needed to
// build public URLs because the handle does not expose it.
func NewBucketUploader(bucket *gcs.BucketHandle, bucketName string) *BucketUploader {
	return &BucketUploader{bucket: bucket, bucketName: bucketName}
}

// Upload writes the object and returns its storage URL. There is no
// rollback path: a failed metadata write after a successful upload
// leaves the object behind.
func (u *BucketUploader) Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	w := u.bucket.Object(path).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object '%s': %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object '%s': %w", path, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, path), nil
}

// sanitizeFilename keeps object paths predictable by flattening path
// separators and spaces out of user-supplied names.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "file"
	}
	return name
}

// ProfilePhotoPath generates the object path for a user's profile
// photo.
func ProfilePhotoPath(uid, filename string) string {
	return fmt.Sprintf("profiles/%s/%s-%s", uid, uuid.NewString(), sanitizeFilename(filename))
}

// ProcessDocumentPath generates the object path for a document
// uploaded to a process.
func ProcessDocumentPath(processID, filename string) string {
	return fmt.Sprintf("processes/%s/documents/%s-%s", processID, uuid.NewString(), sanitizeFilename(filename))
}
