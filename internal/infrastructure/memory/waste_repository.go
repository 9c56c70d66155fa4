package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.WasteRepository = (*WasteRepo)(nil)

// WasteRepo is the in-memory WasteRepository.
type WasteRepo struct {
	mu     sync.RWMutex
	wastes map[string]entity.Waste
}

// NewWasteRepository builds an empty in-memory waste store.
func NewWasteRepository() *WasteRepo {
	return &WasteRepo{wastes: map[string]entity.Waste{}}
}

func (r *WasteRepo) Create(ctx context.Context, waste *entity.Waste) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wastes[waste.ID] = *waste
	return nil
}

func (r *WasteRepo) GetByID(ctx context.Context, id string) (*entity.Waste, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if w, ok := r.wastes[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r *WasteRepo) Update(ctx context.Context, waste *entity.Waste) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wastes[waste.ID] = *waste
	return nil
}

func (r *WasteRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wastes, id)
	return nil
}

func (r *WasteRepo) List(ctx context.Context, page pagination.Params, filter repository.WasteFilter) ([]*entity.Waste, string, error) {
	page = page.Normalize()
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := map[string]entity.Waste{}
	for id, w := range r.wastes {
		if matchWaste(w, filter) {
			matching[id] = w
		}
	}

	ids, last := pageIDs(sortedKeys(matching), page.Last, page.Limit)
	list := make([]*entity.Waste, 0, len(ids))
	for _, id := range ids {
		w := matching[id]
		list = append(list, &w)
	}
	return list, last, nil
}

func matchWaste(w entity.Waste, f repository.WasteFilter) bool {
	if f.Name != "" && w.NormalizedName != f.Name {
		return false
	}
	if f.NameContains != "" && !strings.Contains(w.NormalizedName, f.NameContains) {
		return false
	}
	if f.NamePrefix != "" && !strings.HasPrefix(w.NormalizedName, f.NamePrefix) {
		return false
	}
	if f.FKKOCode != "" && w.NormalizedCode != f.FKKOCode {
		return false
	}
	if f.FKKOCodeContains != "" && !strings.Contains(w.NormalizedCode, f.FKKOCodeContains) {
		return false
	}
	if f.FKKOCodePrefix != "" && !strings.HasPrefix(w.NormalizedCode, f.FKKOCodePrefix) {
		return false
	}
	return true
}
