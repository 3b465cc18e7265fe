package minio

import "github.com/minio/minio-go/v7"

// Config holds MinIO client configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// Object describes a stored object.
type Object struct {
	Key         string
	Size        int64
	ContentType string
}

// minioImpl implements IMinIO over the official client.
type minioImpl struct {
	client *minio.Client
	bucket string
}
