// Package storage uploads application documents (resumes, CVs) to
// S3-compatible object storage and hands back durable public URLs. The
// notification pipeline references these URLs as links; files are never
// re-uploaded or attached downstream.
package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
type Storage interface {
	// Put uploads data from a reader and returns metadata including the
	// public URL of the stored object.
	Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error)

	// Delete removes a file from storage.
	Delete(ctx context.Context, key string) error
}

// Config holds S3-compatible storage configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Bucket    string `env:"STORAGE_BUCKET"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	// Endpoint is a custom S3 endpoint URL (for MinIO or other S3-compatible services).
	Endpoint string `env:"STORAGE_ENDPOINT"`
	Region   string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	// PublicURL is the CDN or public URL prefix. If set, returned URLs use
	// this prefix instead of the bucket endpoint.
	PublicURL string `env:"STORAGE_PUBLIC_URL"`
	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"STORAGE_PATH_STYLE" envDefault:"false"`
}

// Configured reports whether the upload collaborator can be constructed.
func (c Config) Configured() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

// FileInfo contains metadata about an uploaded file.
type FileInfo struct {
	// Key is the storage key (path) for the file.
	Key string

	// URL is the durable public URL for the file.
	URL string

	// ContentType is the detected or supplied MIME type.
	ContentType string

	// Size is the file size in bytes.
	Size int64
}

// Option customizes a Put operation.
type Option func(*putOptions)

type putOptions struct {
	folder      string
	contentType string
}

// WithFolder prefixes the generated key with a folder hint (e.g. "applications").
func WithFolder(folder string) Option {
	return func(o *putOptions) {
		o.folder = folder
	}
}

// WithContentType sets the MIME type instead of detecting it from content.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}
