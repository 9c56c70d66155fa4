package memory

import (
	"context"
	"sync"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo is the in-memory CompanyRepository.
type CompanyRepo struct {
	mu        sync.RWMutex
	companies map[string]entity.Company
}

// NewCompanyRepository builds an empty in-memory company store.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{companies: map[string]entity.Company{}}
}

func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[company.ID] = *company
	return nil
}

func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.companies[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[company.ID] = *company
	return nil
}

func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
	return nil
}

func (r *CompanyRepo) List(ctx context.Context, page pagination.Params) ([]*entity.Company, string, error) {
	page = page.Normalize()
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, last := pageIDs(sortedKeys(r.companies), page.Last, page.Limit)
	list := make([]*entity.Company, 0, len(ids))
	for _, id := range ids {
		c := r.companies[id]
		list = append(list, &c)
	}
	return list, last, nil
}
