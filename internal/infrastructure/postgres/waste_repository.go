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

var _ repository.WasteRepository = (*WasteRepo)(nil)

// WasteRepo implements the WasteRepository port over PostgreSQL. Filter
// predicates are compiled into the SQL WHERE clause over the pre-normalized
// columns, so matching happens entirely server-side.
type WasteRepo struct {
	pool *pgxpool.Pool
}

// NewWasteRepository builds the persistence adapter for wastes.
func NewWasteRepository(pool *pgxpool.Pool) *WasteRepo {
	return &WasteRepo{pool: pool}
}

// Create persists a new waste.
func (r *WasteRepo) Create(ctx context.Context, waste *entity.Waste) error {
	query := `
		INSERT INTO wastes (id, name, normalized_name, fkko_code, normalized_code)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		waste.ID, waste.Name, waste.NormalizedName, waste.FKKOCode, waste.NormalizedCode,
	)
	if err != nil {
		return fmt.Errorf("insert waste: %w", err)
	}
	return nil
}

// GetByID fetches a waste by id; (nil, nil) when absent.
func (r *WasteRepo) GetByID(ctx context.Context, id string) (*entity.Waste, error) {
	query := `
		SELECT id, name, normalized_name, fkko_code, normalized_code
		FROM wastes WHERE id = $1`
	var w entity.Waste
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.NormalizedName, &w.FKKOCode, &w.NormalizedCode,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get waste: %w", err)
	}
	return &w, nil
}

// Update updates a waste.
func (r *WasteRepo) Update(ctx context.Context, waste *entity.Waste) error {
	query := `
		UPDATE wastes SET name = $2, normalized_name = $3, fkko_code = $4, normalized_code = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		waste.ID, waste.Name, waste.NormalizedName, waste.FKKOCode, waste.NormalizedCode,
	)
	if err != nil {
		return fmt.Errorf("update waste: %w", err)
	}
	return nil
}

// Delete removes a waste by id.
func (r *WasteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM wastes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete waste: %w", err)
	}
	return nil
}

// List returns one keyset page of wastes matching the filter, ordered by id.
func (r *WasteRepo) List(ctx context.Context, page pagination.Params, filter repository.WasteFilter) ([]*entity.Waste, string, error) {
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
	if filter.FKKOCode != "" {
		addCond("normalized_code = $%d", filter.FKKOCode)
	}
	if filter.FKKOCodeContains != "" {
		addCond("normalized_code LIKE $%d", "%"+escapeLike(filter.FKKOCodeContains)+"%")
	}
	if filter.FKKOCodePrefix != "" {
		addCond("normalized_code LIKE $%d", escapeLike(filter.FKKOCodePrefix)+"%")
	}

	args = append(args, page.Limit)
	query := fmt.Sprintf(`
		SELECT id, name, normalized_name, fkko_code, normalized_code
		FROM wastes WHERE %s ORDER BY id LIMIT $%d`,
		strings.Join(conds, " AND "), len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("list wastes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Waste
	for rows.Next() {
		var w entity.Waste
		if err := rows.Scan(&w.ID, &w.Name, &w.NormalizedName, &w.FKKOCode, &w.NormalizedCode); err != nil {
			return nil, "", fmt.Errorf("scan waste: %w", err)
		}
		list = append(list, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	last := cursorFor(list, page.Limit, func(w *entity.Waste) string { return w.ID })
	return list, last, nil
}
