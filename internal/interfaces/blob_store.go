package interfaces

import (
	"context"
	"io"
)

// StoredObject is where an uploaded blob ended up.
type StoredObject struct {
	URL  string
	Path string
}

// BlobStore holds punch list attachment files.
type BlobStore interface {
	Upload(ctx context.Context, path string, contentType string, body io.Reader) (*StoredObject, error)
	Delete(ctx context.Context, path string) error
}
