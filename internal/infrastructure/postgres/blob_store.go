package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore implements the blob-store port over a single bytea table. Each
// instance is scoped to one bucket, mirroring the original per-collection
// drives (offer_tpls, offers).
type BlobStore struct {
	pool   *pgxpool.Pool
	bucket string
}

// NewBlobStore builds a blob store bound to the given bucket.
func NewBlobStore(pool *pgxpool.Pool, bucket string) *BlobStore {
	return &BlobStore{pool: pool, bucket: bucket}
}

// Get returns the blob under key; (nil, nil) when absent.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM blobs WHERE bucket = $1 AND key = $2`,
		s.bucket, key,
	).Scan(&data)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blob %s/%s: %w", s.bucket, key, err)
	}
	return data, nil
}

// Put stores the blob under key, replacing any previous contents.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO blobs (bucket, key, data) VALUES ($1, $2, $3)
		ON CONFLICT (bucket, key) DO UPDATE SET data = EXCLUDED.data`,
		s.bucket, key, data,
	)
	if err != nil {
		return fmt.Errorf("put blob %s/%s: %w", s.bucket, key, err)
	}
	return nil
}

// Delete removes the blob under key. Deleting an absent blob is not an error.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM blobs WHERE bucket = $1 AND key = $2`,
		s.bucket, key,
	)
	if err != nil {
		return fmt.Errorf("delete blob %s/%s: %w", s.bucket, key, err)
	}
	return nil
}
