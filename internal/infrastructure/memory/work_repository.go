package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.WorkRepository = (*WorkRepo)(nil)

// WorkRepo is the in-memory WorkRepository.
type WorkRepo struct {
	mu    sync.RWMutex
	works map[string]entity.Work
}

// NewWorkRepository builds an empty in-memory work store.
func NewWorkRepository() *WorkRepo {
	return &WorkRepo{works: map[string]entity.Work{}}
}

func (r *WorkRepo) Create(ctx context.Context, work *entity.Work) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.works[work.ID] = *work
	return nil
}

func (r *WorkRepo) GetByID(ctx context.Context, id string) (*entity.Work, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if w, ok := r.works[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r *WorkRepo) Update(ctx context.Context, work *entity.Work) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.works[work.ID] = *work
	return nil
}

func (r *WorkRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.works, id)
	return nil
}

func (r *WorkRepo) List(ctx context.Context, page pagination.Params, filter repository.WorkFilter) ([]*entity.Work, string, error) {
	page = page.Normalize()
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := map[string]entity.Work{}
	for id, w := range r.works {
		if matchWork(w, filter) {
			matching[id] = w
		}
	}

	ids, last := pageIDs(sortedKeys(matching), page.Last, page.Limit)
	list := make([]*entity.Work, 0, len(ids))
	for _, id := range ids {
		w := matching[id]
		list = append(list, &w)
	}
	return list, last, nil
}

func matchWork(w entity.Work, f repository.WorkFilter) bool {
	if f.Name != "" && w.NormalizedName != f.Name {
		return false
	}
	if f.NameContains != "" && !strings.Contains(w.NormalizedName, f.NameContains) {
		return false
	}
	if f.NamePrefix != "" && !strings.HasPrefix(w.NormalizedName, f.NamePrefix) {
		return false
	}
	return true
}
