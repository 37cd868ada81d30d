package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader is the narrow contract with external object storage: hand it a
// file, get back a public URL. Nothing else leaks through.
type Uploader interface {
	Store(ctx context.Context, file multipart.File, filename, contentType string) (string, error)
}

// BucketUploader writes evidence and profile images into a Cloud Storage
// bucket with uniform public read access.
type BucketUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
	folder     string
}

func NewBucketUploader(bucket *storage.BucketHandle, bucketName string) *BucketUploader {
	return &BucketUploader{bucket: bucket, bucketName: bucketName, folder: "uploads"}
}

func (u *BucketUploader) Store(ctx context.Context, file multipart.File, filename, contentType string) (string, error) {
	objectName := fmt.Sprintf("%s/%s%s", u.folder, uuid.New().String(), path.Ext(filename))
	writer := u.bucket.Object(objectName).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := io.Copy(writer, file); err != nil {
		writer.Close()
		return "", fmt.Errorf("upload write error: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("upload close error: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectName), nil
}
