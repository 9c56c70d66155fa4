package repository

import "context"

// BlobStore is the port for file contents, keyed by the owning record's id.
// Get returns (nil, nil) when no blob exists under the key.
//
// Metadata rows and blobs are deliberately written and deleted with two
// independent calls; no transaction links them (last write wins).
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
