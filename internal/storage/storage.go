// Package storage holds the object-storage client used for uploaded media.
// Blobs live in an S3-compatible bucket; the database keeps only metadata
// rows pointing at them.
package storage

import (
	"context"
	"io"
)

// ObjectStore is the remote blob store consumed by the media service.
type ObjectStore interface {
	// Put uploads the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
}
