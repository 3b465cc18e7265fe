package minio

import (
	"context"
	"io"
)

// IMinIO defines the interface for object storage operations.
type IMinIO interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	ListObjects(ctx context.Context, prefix string) ([]Object, error)
	Exists(ctx context.Context, key string) (bool, error)
	Remove(ctx context.Context, key string) error
	Bucket() string
}

// New creates a MinIO client and ensures the configured bucket exists.
func New(ctx context.Context, cfg Config) (IMinIO, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}
	return newMinioImpl(ctx, cfg)
}
