// Package storage stores uploaded contract files and report attachments in an
// S3-compatible object store. Objects are streamed; nothing touches local disk.
package storage

import (
	"context"
	"io"
	"path"
	"time"
)

// Key prefixes inside the bucket.
const (
	PrefixFiles   = "files"
	PrefixReports = "reports"
)

// PutObjectOptions describe an upload. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the store reports about a blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the blob store used by the file and report services.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// ObjectURL is the stable URL stored on file records.
	ObjectURL(key string) string
}

// Key joins a prefix and a generated object name.
func Key(prefix, name string) string {
	return path.Join(prefix, name)
}
