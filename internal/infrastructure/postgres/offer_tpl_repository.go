package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.OfferTemplateRepository = (*OfferTemplateRepo)(nil)

// OfferTemplateRepo implements the OfferTemplateRepository port over PostgreSQL.
type OfferTemplateRepo struct {
	pool *pgxpool.Pool
}

// NewOfferTemplateRepository builds the persistence adapter for offer templates.
func NewOfferTemplateRepository(pool *pgxpool.Pool) *OfferTemplateRepo {
	return &OfferTemplateRepo{pool: pool}
}

// Create persists template metadata.
func (r *OfferTemplateRepo) Create(ctx context.Context, tpl *entity.OfferTemplate) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO offer_tpls (id, name) VALUES ($1, $2)`,
		tpl.ID, tpl.Name,
	)
	if err != nil {
		return fmt.Errorf("insert offer template: %w", err)
	}
	return nil
}

// GetByID fetches a template by id; (nil, nil) when absent.
func (r *OfferTemplateRepo) GetByID(ctx context.Context, id string) (*entity.OfferTemplate, error) {
	var t entity.OfferTemplate
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM offer_tpls WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer template: %w", err)
	}
	return &t, nil
}

// Update updates template metadata.
func (r *OfferTemplateRepo) Update(ctx context.Context, tpl *entity.OfferTemplate) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE offer_tpls SET name = $2 WHERE id = $1`,
		tpl.ID, tpl.Name,
	)
	if err != nil {
		return fmt.Errorf("update offer template: %w", err)
	}
	return nil
}

// Delete removes template metadata by id.
func (r *OfferTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM offer_tpls WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete offer template: %w", err)
	}
	return nil
}

// List returns one keyset page of templates ordered by id.
func (r *OfferTemplateRepo) List(ctx context.Context, page pagination.Params) ([]*entity.OfferTemplate, string, error) {
	page = page.Normalize()
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM offer_tpls WHERE ($1 = '' OR id > $1) ORDER BY id LIMIT $2`,
		page.Last, page.Limit,
	)
	if err != nil {
		return nil, "", fmt.Errorf("list offer templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.OfferTemplate
	for rows.Next() {
		var t entity.OfferTemplate
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, "", fmt.Errorf("scan offer template: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	last := cursorFor(list, page.Limit, func(t *entity.OfferTemplate) string { return t.ID })
	return list, last, nil
}
