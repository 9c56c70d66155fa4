package repository

import (
	"context"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
)

// WorkFilter restricts a work listing. Fields hold pre-normalized names;
// empty means "no constraint". Predicates combine with logical AND.
type WorkFilter struct {
	Name         string
	NameContains string
	NamePrefix   string
}

// Empty reports whether no predicate is set.
func (f WorkFilter) Empty() bool {
	return f == WorkFilter{}
}

// WorkRepository is the persistence port for Work.
type WorkRepository interface {
	Create(ctx context.Context, work *entity.Work) error
	GetByID(ctx context.Context, id string) (*entity.Work, error)
	Update(ctx context.Context, work *entity.Work) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page pagination.Params, filter WorkFilter) ([]*entity.Work, string, error)
}
