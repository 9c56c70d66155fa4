package repository

import (
	"context"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
)

// WasteFilter restricts a waste listing. All fields hold pre-normalized
// values (see entity.NormalizeName / entity.NormalizeFKKOCode); empty means
// "no constraint". Predicates combine with logical AND and are applied by the
// backing store, never in-process.
type WasteFilter struct {
	Name         string
	NameContains string
	NamePrefix   string

	FKKOCode         string
	FKKOCodeContains string
	FKKOCodePrefix   string
}

// Empty reports whether no predicate is set.
func (f WasteFilter) Empty() bool {
	return f == WasteFilter{}
}

// WasteRepository is the persistence port for Waste.
type WasteRepository interface {
	Create(ctx context.Context, waste *entity.Waste) error
	GetByID(ctx context.Context, id string) (*entity.Waste, error)
	Update(ctx context.Context, waste *entity.Waste) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page pagination.Params, filter WasteFilter) ([]*entity.Waste, string, error)
}
