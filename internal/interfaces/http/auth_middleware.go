package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/auth"
	"github.com/mshagov/ecooffer-api/internal/application/dto"
	"github.com/mshagov/ecooffer-api/internal/domain/entity"
)

// LocalUser locals key for the authenticated user.
const LocalUser = "current_user"

// AuthMiddleware validates the Bearer token and resolves the live user record
// into c.Locals. A deleted user fails resolution even with a valid token.
func AuthMiddleware(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		user, err := authUC.Authorize(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireAdmin gates a route to admin-or-higher roles. Must run after
// AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "admin role required"})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user placed by AuthMiddleware, or nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}
