package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/dto"
	"github.com/mshagov/ecooffer-api/internal/application/usecase"
)

// CompanyHandler handles the company catalog.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Company data"
// @Success      201  {object}  dto.CompanyResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if in.Name == "" {
		return badRequest(c, "name is required")
	}
	company, err := h.uc.Create(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyResponse{Company: dto.NewCompanyView(company)})
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        limit  query  int     false  "Page size"  default(1000)
// @Param        last   query  string  false  "Cursor from the previous page"
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "invalid query")
	}
	companies, last, err := h.uc.List(c.Context(), page.Params())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCompanyListResponse(companies, last))
}

// GetByID godoc
// @Summary      Get a company by id
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "Company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	company, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CompanyResponse{Company: dto.NewCompanyView(company)})
}

// Update godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Company id"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Fields to change"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	company, err := h.uc.Update(c.Context(), c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CompanyResponse{Company: dto.NewCompanyView(company)})
}

// Delete godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "Company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	company, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CompanyResponse{Company: dto.NewCompanyView(company)})
}
