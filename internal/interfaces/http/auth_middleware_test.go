package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mshagov/ecooffer-api/internal/application/auth"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/memory"
	apphttp "github.com/mshagov/ecooffer-api/internal/interfaces/http"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "ecooffer-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with one protected and one
// admin-gated route, backed by an in-memory user store.
func buildTestApp(t *testing.T) (*fiber.App, *auth.UseCase, *memory.UserRepo) {
	t.Helper()
	users := memory.NewUserRepository()
	authUC := auth.NewUseCase(users, auth.Config{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(authUC))
	protected.Get("/protected", func(c *fiber.Ctx) error {
		user := apphttp.CurrentUser(c)
		return c.JSON(fiber.Map{"login": user.Login})
	})
	protected.Get("/admin-only", apphttp.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app, authUC, users
}

func seedUser(t *testing.T, users *memory.UserRepo, login, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{
		ID:           uuid.New().String(),
		Login:        login,
		Name:         "Test User",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, authUC *auth.UseCase, loginName, password string) string {
	t.Helper()
	token, err := authUC.Login(context.Background(), loginName, password)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app, _, _ := buildTestApp(t)
	resp := doRequest(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app, _, _ := buildTestApp(t)
	resp := doRequest(t, app, "/protected", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidTokenResolvesUser(t *testing.T) {
	app, authUC, users := buildTestApp(t)
	seedUser(t, users, "ivanov", "secret", entity.RoleEmployee)

	resp := doRequest(t, app, "/protected", login(t, authUC, "ivanov", "secret"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "ivanov", payload["login"])
}

func TestAuthMiddleware_DeletedUserIsRejected(t *testing.T) {
	app, authUC, users := buildTestApp(t)
	user := seedUser(t, users, "ivanov", "secret", entity.RoleEmployee)
	header := login(t, authUC, "ivanov", "secret")

	require.NoError(t, users.Delete(context.Background(), user.ID))

	resp := doRequest(t, app, "/protected", header)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdmin_EmployeeForbidden(t *testing.T) {
	app, authUC, users := buildTestApp(t)
	seedUser(t, users, "ivanov", "secret", entity.RoleEmployee)

	resp := doRequest(t, app, "/admin-only", login(t, authUC, "ivanov", "secret"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin_AdminAndSuperuserPass(t *testing.T) {
	app, authUC, users := buildTestApp(t)
	seedUser(t, users, "admin", "secret", entity.RoleAdmin)
	seedUser(t, users, "boss", "secret", entity.RoleSuperuser)

	resp := doRequest(t, app, "/admin-only", login(t, authUC, "admin", "secret"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "/admin-only", login(t, authUC, "boss", "secret"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
