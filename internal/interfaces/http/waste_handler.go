package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/dto"
	"github.com/mshagov/ecooffer-api/internal/application/usecase"
)

// WasteHandler handles the waste catalog.
type WasteHandler struct {
	uc *usecase.WasteUseCase
}

// NewWasteHandler builds the handler.
func NewWasteHandler(uc *usecase.WasteUseCase) *WasteHandler {
	return &WasteHandler{uc: uc}
}

// Create godoc
// @Summary      Create a waste item
// @Tags         wastes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWasteRequest  true  "Waste data"
// @Success      201  {object}  dto.WasteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /wastes [post]
func (h *WasteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if in.Name == "" || in.FKKOCode == "" {
		return badRequest(c, "name and fkko_code are required")
	}
	waste, err := h.uc.Create(c.Context(), in.Name, in.FKKOCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WasteResponse{Waste: dto.NewWasteView(waste)})
}

// List godoc
// @Summary      List waste items
// @Tags         wastes
// @Produce      json
// @Param        limit              query  int     false  "Page size"  default(1000)
// @Param        last               query  string  false  "Cursor from the previous page"
// @Param        name               query  string  false  "Exact name match (normalized)"
// @Param        name_contains      query  string  false  "Name substring match"
// @Param        name_prefix        query  string  false  "Name prefix match"
// @Param        fkko_code          query  string  false  "Exact FKKO code match (spaces ignored)"
// @Param        fkko_code_contains query  string  false  "FKKO code substring match"
// @Param        fkko_code_prefix   query  string  false  "FKKO code prefix match"
// @Success      200  {object}  dto.WasteListResponse
// @Router       /wastes [get]
func (h *WasteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "invalid query")
	}
	var q dto.WasteListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query")
	}

	wastes, last, err := h.uc.List(c.Context(), page.Params(), usecase.WasteQuery{
		Name:             q.Name,
		NameContains:     q.NameContains,
		NamePrefix:       q.NamePrefix,
		FKKOCode:         q.FKKOCode,
		FKKOCodeContains: q.FKKOCodeContains,
		FKKOCodePrefix:   q.FKKOCodePrefix,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewWasteListResponse(wastes, last))
}

// GetByID godoc
// @Summary      Get a waste item by id
// @Tags         wastes
// @Produce      json
// @Param        id  path  string  true  "Waste id"
// @Success      200  {object}  dto.WasteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /wastes/{id} [get]
func (h *WasteHandler) GetByID(c *fiber.Ctx) error {
	waste, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WasteResponse{Waste: dto.NewWasteView(waste)})
}

// Update godoc
// @Summary      Update a waste item
// @Tags         wastes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Waste id"
// @Param        body  body  dto.UpdateWasteRequest  true  "Fields to change"
// @Success      200  {object}  dto.WasteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /wastes/{id} [put]
func (h *WasteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	waste, err := h.uc.Update(c.Context(), c.Params("id"), in.Name, in.FKKOCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WasteResponse{Waste: dto.NewWasteView(waste)})
}

// Delete godoc
// @Summary      Delete a waste item
// @Tags         wastes
// @Produce      json
// @Param        id  path  string  true  "Waste id"
// @Success      200  {object}  dto.WasteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /wastes/{id} [delete]
func (h *WasteHandler) Delete(c *fiber.Ctx) error {
	waste, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.WasteResponse{Waste: dto.NewWasteView(waste)})
}
