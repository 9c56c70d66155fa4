package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

// WorkQuery is a raw listing query; values are normalized before they reach
// the repository filter.
type WorkQuery struct {
	Name         string
	NameContains string
	NamePrefix   string
}

// WorkUseCase manages the catalog of works a company performs.
type WorkUseCase struct {
	repo repository.WorkRepository
}

// NewWorkUseCase builds the work use case.
func NewWorkUseCase(repo repository.WorkRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo}
}

// Create registers a new work item.
func (uc *WorkUseCase) Create(ctx context.Context, name string) (*entity.Work, error) {
	work := entity.NewWork(uuid.New().String(), name)
	if err := uc.repo.Create(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

// Get returns a work item by id.
func (uc *WorkUseCase) Get(ctx context.Context, id string) (*entity.Work, error) {
	work, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, domain.ErrWorkNotFound
	}
	return work, nil
}

// List returns a page of work items matching the query.
func (uc *WorkUseCase) List(ctx context.Context, page pagination.Params, q WorkQuery) ([]*entity.Work, string, error) {
	filter := repository.WorkFilter{
		Name:         entity.NormalizeName(q.Name),
		NameContains: entity.NormalizeName(q.NameContains),
		NamePrefix:   entity.NormalizeName(q.NamePrefix),
	}
	return uc.repo.List(ctx, page, filter)
}

// Update applies a partial update. Nil fields keep their current value.
func (uc *WorkUseCase) Update(ctx context.Context, id string, name *string) (*entity.Work, error) {
	work, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		work.Rename(*name)
	}
	if err := uc.repo.Update(ctx, work); err != nil {
		return nil, err
	}
	return work, nil
}

// Delete removes a work item and returns the deleted record.
func (uc *WorkUseCase) Delete(ctx context.Context, id string) (*entity.Work, error) {
	work, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return work, nil
}
