package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded car photos live. The demo deployment uses
// the local filesystem; swapping in object storage only requires another
// implementation.
type Storage interface {
	// Save writes content at the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given relative path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given relative path.
	Delete(ctx context.Context, path string) error
}
