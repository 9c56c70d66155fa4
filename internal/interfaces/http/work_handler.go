package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/dto"
	"github.com/mshagov/ecooffer-api/internal/application/usecase"
)

// WorkHandler handles the work catalog.
type WorkHandler struct {
	uc *usecase.WorkUseCase
}

// NewWorkHandler builds the handler.
func NewWorkHandler(uc *usecase.WorkUseCase) *WorkHandler {
	return &WorkHandler{uc: uc}
}

// Create godoc
// @Summary      Create a work item
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkRequest  true  "Work data"
// @Success      201  {object}  dto.WorkResponse
// @Router       /works [post]
func (h *WorkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if in.Name == "" {
		return badRequest(c, "name is required")
	}
	work, err := h.uc.Create(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WorkResponse{Work: dto.NewWorkView(work)})
}

// List godoc
// @Summary      List work items
// @Tags         works
// @Produce      json
// @Param        limit          query  int     false  "Page size"  default(1000)
// @Param        last           query  string  false  "Cursor from the previous page"
// @Param        name           query  string  false  "Exact name match (normalized)"
// @Param        name_contains  query  string  false  "Name substring match"
// @Param        name_prefix    query  string  false  "Name prefix match"
// @Success      200  {object}  dto.WorkListResponse
// @Router       /works [get]
func (h *WorkHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "invalid query")
	}
	var q dto.WorkListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query")
	}

	works, last, err := h.uc.List(c.Context(), page.Params(), usecase.WorkQuery{
		Name:         q.Name,
		NameContains: q.NameContains,
		NamePrefix:   q.NamePrefix,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewWorkListResponse(works, last))
}

// GetByID godoc
// @Summary      Get a work item by id
// @Tags         works
// @Produce      json
// @Param        id  path  string  true  "Work id"
// @Success      200  {object}  dto.WorkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /works/{id} [get]
func (h *WorkHandler) GetByID(c *fiber.Ctx) error {
	work, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WorkResponse{Work: dto.NewWorkView(work)})
}

// Update godoc
// @Summary      Update a work item
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Work id"
// @Param        body  body  dto.UpdateWorkRequest  true  "Fields to change"
// @Success      200  {object}  dto.WorkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /works/{id} [put]
func (h *WorkHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	work, err := h.uc.Update(c.Context(), c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WorkResponse{Work: dto.NewWorkView(work)})
}

// Delete godoc
// @Summary      Delete a work item
// @Tags         works
// @Produce      json
// @Param        id  path  string  true  "Work id"
// @Success      200  {object}  dto.WorkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /works/{id} [delete]
func (h *WorkHandler) Delete(c *fiber.Ctx) error {
	work, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WorkResponse{Work: dto.NewWorkView(work)})
}
