// Package usecase contains the catalog and user management use cases. Each
// use case wraps a repository port, enforces the invariants the store cannot
// express and maps missing records to domain sentinel errors.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
	"github.com/mshagov/ecooffer-api/pkg/logger"
	"github.com/mshagov/ecooffer-api/pkg/password"
)

// UserUseCase manages user records. Passwords are generated server-side and
// returned exactly once; only the bcrypt hash is stored.
type UserUseCase struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserUseCase builds the user use case.
func NewUserUseCase(repo repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log}
}

// Create registers a new user and returns the record together with its
// generated password. The password is not recoverable afterwards, only reset.
func (uc *UserUseCase) Create(ctx context.Context, login, name, role string) (*entity.User, string, error) {
	if !entity.ValidRole(role) {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}
	existing, err := uc.repo.GetByLogin(ctx, login)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrLoginTaken
	}

	plain := password.Generate()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Login:        login,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}
	uc.log.Info().Str("user_id", user.ID).Str("login", login).Msg("user created")
	return user, plain, nil
}

// Get returns a user by id.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List returns a page of users and the cursor for the next one.
func (uc *UserUseCase) List(ctx context.Context, page pagination.Params) ([]*entity.User, string, error) {
	return uc.repo.List(ctx, page)
}

// Update applies a partial update. Nil fields keep their current value. A new
// login must not collide with another user's.
func (uc *UserUseCase) Update(ctx context.Context, id string, login, name, role *string) (*entity.User, error) {
	user, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if role != nil {
		if !entity.ValidRole(*role) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, *role)
		}
		user.Role = *role
	}
	if login != nil && *login != user.Login {
		other, err := uc.repo.GetByLogin(ctx, *login)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrLoginTaken
		}
		user.Login = *login
	}
	if name != nil {
		user.Name = *name
	}

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword replaces the user's password with a fresh generated one and
// returns it. Existing tokens stay valid; only the credentials change.
func (uc *UserUseCase) ResetPassword(ctx context.Context, id string) (*entity.User, string, error) {
	user, err := uc.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	plain := password.Generate()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, "", err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("password reset")
	return user, plain, nil
}

// Delete removes a user and returns the deleted record. Outstanding tokens
// for the user stop authorizing immediately.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", id).Msg("user deleted")
	return user, nil
}
