package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/document"
	"github.com/mshagov/ecooffer-api/internal/application/dto"
)

// OfferTemplateHandler handles template management, download and offer
// building.
type OfferTemplateHandler struct {
	templates *document.TemplateUseCase
	offers    *document.OfferUseCase
}

// NewOfferTemplateHandler builds the handler.
func NewOfferTemplateHandler(templates *document.TemplateUseCase, offers *document.OfferUseCase) *OfferTemplateHandler {
	return &OfferTemplateHandler{templates: templates, offers: offers}
}

// Create godoc
// @Summary      Upload an offer template
// @Tags         offer_tpls
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOfferTemplateRequest  true  "Name and base64 docx"
// @Success      201  {object}  dto.OfferTemplateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /offer_tpls [post]
func (h *OfferTemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if in.Name == "" || in.OfferTplFile == "" {
		return badRequest(c, "name and offer_tpl_file are required")
	}
	tpl, err := h.templates.Create(c.Context(), in.Name, in.OfferTplFile)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OfferTemplateResponse{OfferTpl: dto.NewOfferTemplateView(tpl)})
}

// List godoc
// @Summary      List offer templates
// @Tags         offer_tpls
// @Produce      json
// @Param        limit  query  int     false  "Page size"  default(1000)
// @Param        last   query  string  false  "Cursor from the previous page"
// @Success      200  {object}  dto.OfferTemplateListResponse
// @Router       /offer_tpls [get]
func (h *OfferTemplateHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "invalid query")
	}
	tpls, last, err := h.templates.List(c.Context(), page.Params())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewOfferTemplateListResponse(tpls, last))
}

// GetByID godoc
// @Summary      Get an offer template by id
// @Tags         offer_tpls
// @Produce      json
// @Param        id  path  string  true  "Template id"
// @Success      200  {object}  dto.OfferTemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offer_tpls/{id} [get]
func (h *OfferTemplateHandler) GetByID(c *fiber.Ctx) error {
	tpl, err := h.templates.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OfferTemplateResponse{OfferTpl: dto.NewOfferTemplateView(tpl)})
}

// Update godoc
// @Summary      Update an offer template
// @Tags         offer_tpls
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Template id"
// @Param        body  body  dto.UpdateOfferTemplateRequest  true  "Fields to change"
// @Success      200  {object}  dto.OfferTemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offer_tpls/{id} [put]
func (h *OfferTemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOfferTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	tpl, err := h.templates.Update(c.Context(), c.Params("id"), in.Name, in.OfferTplFile)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OfferTemplateResponse{OfferTpl: dto.NewOfferTemplateView(tpl)})
}

// Delete godoc
// @Summary      Delete an offer template
// @Tags         offer_tpls
// @Produce      json
// @Param        id  path  string  true  "Template id"
// @Success      200  {object}  dto.OfferTemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offer_tpls/{id} [delete]
func (h *OfferTemplateHandler) Delete(c *fiber.Ctx) error {
	tpl, err := h.templates.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OfferTemplateResponse{OfferTpl: dto.NewOfferTemplateView(tpl)})
}

// Download godoc
// @Summary      Download an offer template file
// @Tags         offer_tpls
// @Produce      application/octet-stream
// @Param        id           path   string  true   "Template id"
// @Param        file_format  query  string  false  "docx or pdf"  default(docx)
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offer_tpls/{id}/download [get]
func (h *OfferTemplateHandler) Download(c *fiber.Ctx) error {
	format, err := document.ParseFormat(c.Query("file_format"))
	if err != nil {
		return respondError(c, err)
	}
	_, data, err := h.templates.Download(c.Context(), c.Params("id"), format)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, data, format)
}

// Build godoc
// @Summary      Build an offer from a template
// @Tags         offer_tpls
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Template id"
// @Param        body  body  dto.BuildOfferRequest  true  "Offer name and placeholder context"
// @Success      201  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offer_tpls/{id}/build [post]
func (h *OfferTemplateHandler) Build(c *fiber.Ctx) error {
	var in dto.BuildOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	tplID := c.Params("id")
	name := in.Name
	if name == "" {
		tpl, err := h.templates.Get(c.Context(), tplID)
		if err != nil {
			return respondError(c, err)
		}
		name = tpl.Name
	}

	offer, err := h.offers.Build(c.Context(), tplID, name, CurrentUser(c).Name, in.Context)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OfferResponse{Offer: dto.NewOfferView(offer)})
}

// sendFile writes a document download with the fixed attachment disposition.
func sendFile(c *fiber.Ctx, data []byte, format document.Format) error {
	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "offer"+format.Ext()))
	return c.Send(data)
}
