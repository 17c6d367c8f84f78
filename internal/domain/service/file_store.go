package service

import (
	"context"
	"io"
)

// FileStore abstracts the object storage used by the upload passthrough.
// Implementations persist the content and return a publicly reachable URL.
type FileStore interface {
	// Save writes one file and returns its public URL.
	Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
