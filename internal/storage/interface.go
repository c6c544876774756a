package storage

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks frent-client/internal/storage Storage

// Storage defines the interface for artwork object storage.
type Storage interface {
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// ObjectURL returns the public URL an uploaded object is served from.
	ObjectURL(key string) string
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
