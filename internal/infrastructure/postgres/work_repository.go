package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.WorkRepository = (*WorkRepo)(nil)

// WorkRepo implements the WorkRepository port over PostgreSQL.
type WorkRepo struct {
	pool *pgxpool.Pool
}

// NewWorkRepository builds the persistence adapter for works.
func NewWorkRepository(pool *pgxpool.Pool) *WorkRepo {
	return &WorkRepo{pool: pool}
}

// Create persists a new work.
func (r *WorkRepo) Create(ctx context.Context, work *entity.Work) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO works (id, name, normalized_name) VALUES ($1, $2, $3)`,
		work.ID, work.Name, work.NormalizedName,
	)
	if err != nil {
		return fmt.Errorf("insert work: %w", err)
	}
	return nil
}

// GetByID fetches a work by id; (nil, nil) when absent.
func (r *WorkRepo) GetByID(ctx context.Context, id string) (*entity.Work, error) {
	var w entity.Work
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, normalized_name FROM works WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.NormalizedName)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work: %w", err)
	}
	return &w, nil
}

// Update updates a work.
func (r *WorkRepo) Update(ctx context.Context, work *entity.Work) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE works SET name = $2, normalized_name = $3 WHERE id = $1`,
		work.ID, work.Name, work.NormalizedName,
	)
	if err != nil {
		return fmt.Errorf("update work: %w", err)
	}
	return nil
}

// Delete removes a work by id.
func (r *WorkRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM works WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete work: %w", err)
	}
	return nil
}

// List returns one keyset page of works matching the filter, ordered by id.
func (r *WorkRepo) List(ctx context.Context, page pagination.Params, filter repository.WorkFilter) ([]*entity.Work, string, error) {
	page = page.Normalize()

	conds := []string{"($1 = '' OR id > $1)"}
	args := []any{page.Last}
	addCond := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Name != "" {
		addCond("normalized_name = $%d", filter.Name)
	}
	if filter.NameContains != "" {
		addCond("normalized_name LIKE $%d", "%"+escapeLike(filter.NameContains)+"%")
	}
	if filter.NamePrefix != "" {
		addCond("normalized_name LIKE $%d", escapeLike(filter.NamePrefix)+"%")
	}

	args = append(args, page.Limit)
	query := fmt.Sprintf(`
		SELECT id, name, normalized_name
		FROM works WHERE %s ORDER BY id LIMIT $%d`,
		strings.Join(conds, " AND "), len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("list works: %w", err)
	}
	defer rows.Close()

	var list []*entity.Work
	for rows.Next() {
		var w entity.Work
		if err := rows.Scan(&w.ID, &w.Name, &w.NormalizedName); err != nil {
			return nil, "", fmt.Errorf("scan work: %w", err)
		}
		list = append(list, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	last := cursorFor(list, page.Limit, func(w *entity.Work) string { return w.ID })
	return list, last, nil
}
