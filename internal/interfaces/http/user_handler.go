package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/dto"
	"github.com/mshagov/ecooffer-api/internal/application/usecase"
)

// UserHandler handles user management plus the /users/me self-service routes.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler builds the handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "User data"
// @Success      201  {object}  dto.UserWithPasswordResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if in.Login == "" || in.Name == "" || in.Role == "" {
		return badRequest(c, "login, name and role are required")
	}

	user, password, err := h.uc.Create(c.Context(), in.Login, in.Name, in.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserWithPasswordResponse{
		User:     dto.NewUserView(user),
		Password: password,
	})
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        limit  query  int     false  "Page size"  default(1000)
// @Param        last   query  string  false  "Cursor from the previous page"
// @Success      200  {object}  dto.UserListResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "invalid query")
	}
	users, last, err := h.uc.List(c.Context(), page.Params())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewUserListResponse(users, last))
}

// GetByID godoc
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UserResponse{User: dto.NewUserView(user)})
}

// Update godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "User id"
// @Param        body  body  dto.UpdateUserRequest  true  "Fields to change"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	user, err := h.uc.Update(c.Context(), c.Params("id"), in.Login, in.Name, in.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UserResponse{User: dto.NewUserView(user)})
}

// ResetPassword godoc
// @Summary      Reset a user's password
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  dto.UserWithPasswordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id}/password [put]
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	user, password, err := h.uc.ResetPassword(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UserWithPasswordResponse{
		User:     dto.NewUserView(user),
		Password: password,
	})
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User id"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	user, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UserResponse{User: dto.NewUserView(user)})
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.UserResponse{User: dto.NewUserView(CurrentUser(c))})
}

// UpdateMe godoc
// @Summary      Update the authenticated user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateMeRequest  true  "Fields to change"
// @Success      200  {object}  dto.UserResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateMeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	// Role changes stay admin-only.
	user, err := h.uc.Update(c.Context(), CurrentUser(c).ID, in.Login, in.Name, nil)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UserResponse{User: dto.NewUserView(user)})
}
