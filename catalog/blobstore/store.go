// Package blobstore abstracts where catalog snapshots live. Snapshots
// are small, immutable, whole-object blobs, so the interface is
// deliberately Get/Put rather than streaming.
package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is a whole-object blob store.
type Store interface {
	// Get reads the named blob in full.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put writes the named blob atomically, replacing any previous
	// content.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes the named blob. Deleting a missing blob is not
	// an error.
	Delete(ctx context.Context, name string) error
	// List returns blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
