package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implements the OfferRepository port over PostgreSQL.
type OfferRepo struct {
	pool *pgxpool.Pool
}

// NewOfferRepository builds the persistence adapter for offers.
func NewOfferRepository(pool *pgxpool.Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

// Create persists offer metadata.
func (r *OfferRepo) Create(ctx context.Context, offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, name, created_by, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		offer.ID, offer.Name, offer.CreatedBy, offer.CreatedAt, offer.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID fetches an offer by id; (nil, nil) when absent.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	query := `
		SELECT id, name, created_by, created_at, modified_at
		FROM offers WHERE id = $1`
	var o entity.Offer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.CreatedBy, &o.CreatedAt, &o.ModifiedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return &o, nil
}

// Update updates offer metadata.
func (r *OfferRepo) Update(ctx context.Context, offer *entity.Offer) error {
	query := `
		UPDATE offers SET name = $2, created_by = $3, modified_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		offer.ID, offer.Name, offer.CreatedBy, offer.ModifiedAt,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// Delete removes offer metadata by id.
func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}

// List returns one keyset page of offers ordered by id.
func (r *OfferRepo) List(ctx context.Context, page pagination.Params) ([]*entity.Offer, string, error) {
	page = page.Normalize()
	query := `
		SELECT id, name, created_by, created_at, modified_at
		FROM offers WHERE ($1 = '' OR id > $1) ORDER BY id LIMIT $2`
	rows, err := r.pool.Query(ctx, query, page.Last, page.Limit)
	if err != nil {
		return nil, "", fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedBy, &o.CreatedAt, &o.ModifiedAt); err != nil {
			return nil, "", fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	last := cursorFor(list, page.Limit, func(o *entity.Offer) string { return o.ID })
	return list, last, nil
}
