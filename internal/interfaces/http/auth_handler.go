package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/auth"
	"github.com/mshagov/ecooffer-api/internal/application/dto"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Issue an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Login"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return badRequest(c, "username and password are required")
	}

	token, err := h.uc.Login(c.Context(), username, password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
