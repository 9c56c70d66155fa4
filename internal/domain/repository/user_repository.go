package repository

import (
	"context"

	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
)

// UserRepository is the persistence port for User. Implementations live in
// infrastructure; Get* methods return (nil, nil) when no record exists.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByLogin(ctx context.Context, login string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	// List returns one page ordered by id and the cursor for the next page
	// (empty when exhausted).
	List(ctx context.Context, page pagination.Params) ([]*entity.User, string, error)
}
