package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mshagov/ecooffer-api/internal/application/auth"
	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/domain/pagination"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/memory"
)

const testSecret = "test-secret-key-for-unit-tests"

func testConfig() auth.Config {
	return auth.Config{
		Secret:       testSecret,
		ExpMinutes:   60,
		Issuer:       "ecooffer-test",
		RootLogin:    "root",
		RootPassword: "root-password",
	}
}

func seedUser(t *testing.T, users *memory.UserRepo, login, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID:           uuid.New().String(),
		Login:        login,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         entity.RoleEmployee,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestLogin_IssuesUsableToken(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	uc := auth.NewUseCase(users, testConfig())
	user := seedUser(t, users, "ivanov", "secret")

	token, err := uc.Login(ctx, "ivanov", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := uc.Authorize(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "ivanov", got.Login)
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	uc := auth.NewUseCase(users, testConfig())
	seedUser(t, users, "ivanov", "secret")

	_, err := uc.Login(ctx, "ivanov", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_RootBootstrap(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	uc := auth.NewUseCase(users, testConfig())

	// First root login materializes a superuser record.
	token, err := uc.Login(ctx, "root", "root-password")
	require.NoError(t, err)

	root, err := uc.Authorize(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperuser, root.Role)
	assert.True(t, root.IsAdmin())

	// Second login reuses the stored record instead of creating another.
	_, err = uc.Login(ctx, "root", "root-password")
	require.NoError(t, err)
	list, _, err := users.List(ctx, pagination.Default)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestLogin_RootWrongPasswordDoesNotBootstrap(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	uc := auth.NewUseCase(users, testConfig())

	_, err := uc.Login(ctx, "root", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	list, _, err := users.List(ctx, pagination.Default)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAuthorize_DeletedUserRevokesToken(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	uc := auth.NewUseCase(users, testConfig())
	user := seedUser(t, users, "ivanov", "secret")

	token, err := uc.Login(ctx, "ivanov", "secret")
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, user.ID))

	_, err = uc.Authorize(ctx, token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthorize_GarbageToken(t *testing.T) {
	uc := auth.NewUseCase(memory.NewUserRepository(), testConfig())
	_, err := uc.Authorize(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
