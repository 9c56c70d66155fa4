package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/document"
	"github.com/mshagov/ecooffer-api/internal/application/dto"
)

// OfferHandler handles generated offers.
type OfferHandler struct {
	uc *document.OfferUseCase
}

// NewOfferHandler builds the handler.
func NewOfferHandler(uc *document.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Create godoc
// @Summary      Upload an offer file
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOfferRequest  true  "Name and base64 document"
// @Success      201  {object}  dto.OfferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if in.Name == "" || in.OfferFile == "" {
		return badRequest(c, "name and offer_file are required")
	}
	offer, err := h.uc.Create(c.Context(), in.Name, CurrentUser(c).Name, in.OfferFile)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OfferResponse{Offer: dto.NewOfferView(offer)})
}

// List godoc
// @Summary      List offers
// @Tags         offers
// @Produce      json
// @Param        limit  query  int     false  "Page size"  default(1000)
// @Param        last   query  string  false  "Cursor from the previous page"
// @Success      200  {object}  dto.OfferListResponse
// @Router       /offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "invalid query")
	}
	offers, last, err := h.uc.List(c.Context(), page.Params())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewOfferListResponse(offers, last))
}

// GetByID godoc
// @Summary      Get an offer by id
// @Tags         offers
// @Produce      json
// @Param        id  path  string  true  "Offer id"
// @Success      200  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offers/{id} [get]
func (h *OfferHandler) GetByID(c *fiber.Ctx) error {
	offer, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OfferResponse{Offer: dto.NewOfferView(offer)})
}

// Update godoc
// @Summary      Update an offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Offer id"
// @Param        body  body  dto.UpdateOfferRequest  true  "Fields to change"
// @Success      200  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	offer, err := h.uc.Update(c.Context(), c.Params("id"), in.Name, in.OfferFile)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OfferResponse{Offer: dto.NewOfferView(offer)})
}

// Delete godoc
// @Summary      Delete an offer
// @Tags         offers
// @Produce      json
// @Param        id  path  string  true  "Offer id"
// @Success      200  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	offer, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OfferResponse{Offer: dto.NewOfferView(offer)})
}

// Download godoc
// @Summary      Download an offer file
// @Tags         offers
// @Produce      application/octet-stream
// @Param        id           path   string  true   "Offer id"
// @Param        file_format  query  string  false  "docx or pdf"  default(docx)
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /offers/{id}/download [get]
func (h *OfferHandler) Download(c *fiber.Ctx) error {
	format, err := document.ParseFormat(c.Query("file_format"))
	if err != nil {
		return respondError(c, err)
	}
	_, data, err := h.uc.Download(c.Context(), c.Params("id"), format)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, data, format)
}
