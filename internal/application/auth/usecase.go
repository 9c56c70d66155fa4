// Package auth implements stateless bearer-token authentication: login
// exchanges credentials for a signed JWT, authorization resolves a token back
// to the live user record.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/repository"
	"github.com/mshagov/ecooffer-api/pkg/jwt"
)

// Config carries token settings plus the out-of-band root credentials.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string

	// RootLogin/RootPassword bootstrap a superuser record lazily: the first
	// login attempt with these credentials materializes the user. Empty
	// RootLogin disables the mechanism.
	RootLogin    string
	RootPassword string
}

// UseCase authentication use cases: login and token resolution.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Login verifies login/password and issues a JWT. Invalid credentials map to
// domain.ErrUnauthorized without distinguishing unknown user from bad password.
func (uc *UseCase) Login(ctx context.Context, login, password string) (string, error) {
	user, err := uc.users.GetByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = uc.bootstrapRoot(ctx, login, password)
		if err != nil {
			return "", err
		}
		if user == nil {
			return "", domain.ErrUnauthorized
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	return jwt.Generate(uc.cfg.Secret, user.ID, uc.cfg.Issuer, uc.cfg.ExpMinutes)
}

// Authorize resolves a bearer token to the live user record. Token revocation
// is implicit: a deleted user fails the lookup and the token dies with it.
func (uc *UseCase) Authorize(ctx context.Context, token string) (*entity.User, error) {
	userID, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// bootstrapRoot materializes the configured root superuser when the attempted
// credentials match and no record exists yet. Returns (nil, nil) when the
// attempt is not a root bootstrap.
func (uc *UseCase) bootstrapRoot(ctx context.Context, login, password string) (*entity.User, error) {
	if uc.cfg.RootLogin == "" || login != uc.cfg.RootLogin || password != uc.cfg.RootPassword {
		return nil, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash root password: %w", err)
	}
	root := &entity.User{
		ID:           uuid.New().String(),
		Login:        login,
		Name:         "root",
		PasswordHash: string(hash),
		Role:         entity.RoleSuperuser,
	}
	if err := uc.users.Create(ctx, root); err != nil {
		return nil, err
	}
	return root, nil
}
