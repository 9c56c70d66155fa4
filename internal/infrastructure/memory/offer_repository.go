package memory

import (
	"context"
	"sync"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var (
	_ repository.OfferRepository         = (*OfferRepo)(nil)
	_ repository.OfferTemplateRepository = (*OfferTemplateRepo)(nil)
)

// OfferRepo is the in-memory OfferRepository.
type OfferRepo struct {
	mu     sync.RWMutex
	offers map[string]entity.Offer
}

// NewOfferRepository builds an empty in-memory offer store.
func NewOfferRepository() *OfferRepo {
	return &OfferRepo{offers: map[string]entity.Offer{}}
}

func (r *OfferRepo) Create(ctx context.Context, offer *entity.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers[offer.ID] = *offer
	return nil
}

func (r *OfferRepo) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.offers[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (r *OfferRepo) Update(ctx context.Context, offer *entity.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offers[offer.ID] = *offer
	return nil
}

func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.offers, id)
	return nil
}

func (r *OfferRepo) List(ctx context.Context, page pagination.Params) ([]*entity.Offer, string, error) {
	page = page.Normalize()
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, last := pageIDs(sortedKeys(r.offers), page.Last, page.Limit)
	list := make([]*entity.Offer, 0, len(ids))
	for _, id := range ids {
		o := r.offers[id]
		list = append(list, &o)
	}
	return list, last, nil
}

// OfferTemplateRepo is the in-memory OfferTemplateRepository.
type OfferTemplateRepo struct {
	mu   sync.RWMutex
	tpls map[string]entity.OfferTemplate
}

// NewOfferTemplateRepository builds an empty in-memory template store.
func NewOfferTemplateRepository() *OfferTemplateRepo {
	return &OfferTemplateRepo{tpls: map[string]entity.OfferTemplate{}}
}

func (r *OfferTemplateRepo) Create(ctx context.Context, tpl *entity.OfferTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tpls[tpl.ID] = *tpl
	return nil
}

func (r *OfferTemplateRepo) GetByID(ctx context.Context, id string) (*entity.OfferTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tpls[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *OfferTemplateRepo) Update(ctx context.Context, tpl *entity.OfferTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tpls[tpl.ID] = *tpl
	return nil
}

func (r *OfferTemplateRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tpls, id)
	return nil
}

func (r *OfferTemplateRepo) List(ctx context.Context, page pagination.Params) ([]*entity.OfferTemplate, string, error) {
	page = page.Normalize()
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, last := pageIDs(sortedKeys(r.tpls), page.Last, page.Limit)
	list := make([]*entity.OfferTemplate, 0, len(ids))
	for _, id := range ids {
		t := r.tpls[id]
		list = append(list, &t)
	}
	return list, last, nil
}
