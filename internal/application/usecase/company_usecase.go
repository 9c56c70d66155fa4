package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

// CompanyUseCase manages the company catalog.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the company use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registers a new company.
func (uc *CompanyUseCase) Create(ctx context.Context, name string) (*entity.Company, error) {
	company := &entity.Company{ID: uuid.New().String(), Name: name}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get returns a company by id.
func (uc *CompanyUseCase) Get(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// List returns a page of companies and the cursor for the next one.
func (uc *CompanyUseCase) List(ctx context.Context, page pagination.Params) ([]*entity.Company, string, error) {
	return uc.repo.List(ctx, page)
}

// Update applies a partial update. Nil fields keep their current value.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, name *string) (*entity.Company, error) {
	company, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		company.Name = *name
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company and returns the deleted record.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return company, nil
}
