package memory

import (
	"context"
	"sync"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo is the in-memory UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository builds an empty in-memory user store.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: map[string]entity.User{}}
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == user.Login {
			return domain.ErrLoginTaken
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByLogin(ctx context.Context, login string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Login == login {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.Login == user.Login && id != user.ID {
			return domain.ErrLoginTaken
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *UserRepo) List(ctx context.Context, page pagination.Params) ([]*entity.User, string, error) {
	page = page.Normalize()
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids, last := pageIDs(sortedKeys(r.users), page.Last, page.Limit)
	list := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		u := r.users[id]
		list = append(list, &u)
	}
	return list, last, nil
}
