package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements the CompanyRepository port over PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persists a new company.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO companies (id, name) VALUES ($1, $2)`,
		company.ID, company.Name,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company by id; (nil, nil) when absent.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	var c entity.Company
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update updates a company.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE companies SET name = $2 WHERE id = $1`,
		company.ID, company.Name,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete removes a company by id.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// List returns one keyset page of companies ordered by id.
func (r *CompanyRepo) List(ctx context.Context, page pagination.Params) ([]*entity.Company, string, error) {
	page = page.Normalize()
	rows, err := r.pool.Query(ctx,
		`SELECT id, name FROM companies WHERE ($1 = '' OR id > $1) ORDER BY id LIMIT $2`,
		page.Last, page.Limit,
	)
	if err != nil {
		return nil, "", fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, "", fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	last := cursorFor(list, page.Limit, func(c *entity.Company) string { return c.ID })
	return list, last, nil
}
