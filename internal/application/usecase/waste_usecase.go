package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

// WasteQuery is a raw listing query as it arrives from the client. Values are
// normalized here before they reach the repository filter.
type WasteQuery struct {
	Name         string
	NameContains string
	NamePrefix   string

	FKKOCode         string
	FKKOCodeContains string
	FKKOCodePrefix   string
}

// WasteUseCase manages the waste catalog.
type WasteUseCase struct {
	repo repository.WasteRepository
}

// NewWasteUseCase builds the waste use case.
func NewWasteUseCase(repo repository.WasteRepository) *WasteUseCase {
	return &WasteUseCase{repo: repo}
}

// Create registers a new waste item. The FKKO code must match the
// digits-and-spaces grammar.
func (uc *WasteUseCase) Create(ctx context.Context, name, fkkoCode string) (*entity.Waste, error) {
	if !entity.ValidateFKKOCode(fkkoCode) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFKKOCode, fkkoCode)
	}
	waste := entity.NewWaste(uuid.New().String(), name, fkkoCode)
	if err := uc.repo.Create(ctx, waste); err != nil {
		return nil, err
	}
	return waste, nil
}

// Get returns a waste item by id.
func (uc *WasteUseCase) Get(ctx context.Context, id string) (*entity.Waste, error) {
	waste, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if waste == nil {
		return nil, domain.ErrWasteNotFound
	}
	return waste, nil
}

// List returns a page of waste items matching the query. Query values are
// normalized the same way stored names and codes are, so matching is case-
// and punctuation-insensitive.
func (uc *WasteUseCase) List(ctx context.Context, page pagination.Params, q WasteQuery) ([]*entity.Waste, string, error) {
	filter := repository.WasteFilter{
		Name:             entity.NormalizeName(q.Name),
		NameContains:     entity.NormalizeName(q.NameContains),
		NamePrefix:       entity.NormalizeName(q.NamePrefix),
		FKKOCode:         entity.NormalizeFKKOCode(q.FKKOCode),
		FKKOCodeContains: entity.NormalizeFKKOCode(q.FKKOCodeContains),
		FKKOCodePrefix:   entity.NormalizeFKKOCode(q.FKKOCodePrefix),
	}
	return uc.repo.List(ctx, page, filter)
}

// Update applies a partial update. Nil fields keep their current value; a new
// FKKO code is validated first.
func (uc *WasteUseCase) Update(ctx context.Context, id string, name, fkkoCode *string) (*entity.Waste, error) {
	waste, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if fkkoCode != nil {
		if !entity.ValidateFKKOCode(*fkkoCode) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFKKOCode, *fkkoCode)
		}
		waste.Recode(*fkkoCode)
	}
	if name != nil {
		waste.Rename(*name)
	}
	if err := uc.repo.Update(ctx, waste); err != nil {
		return nil, err
	}
	return waste, nil
}

// Delete removes a waste item and returns the deleted record.
func (uc *WasteUseCase) Delete(ctx context.Context, id string) (*entity.Waste, error) {
	waste, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return waste, nil
}
