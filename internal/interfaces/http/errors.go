package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mshagov/ecooffer-api/internal/application/dto"
	"github.com/mshagov/ecooffer-api/internal/domain"
)

var notFoundErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrCompanyNotFound,
	domain.ErrWasteNotFound,
	domain.ErrWorkNotFound,
	domain.ErrOfferNotFound,
	domain.ErrOfferTemplateNotFound,
	domain.ErrAgentNotFound,
}

var validationErrors = []error{
	domain.ErrInvalidRole,
	domain.ErrInvalidFKKOCode,
	domain.ErrBadFileEncoding,
	domain.ErrBadTemplateFile,
	domain.ErrBadOfferContext,
	domain.ErrUnsupportedFormat,
}

// respondError maps a domain error to its HTTP status and error body. Every
// handler funnels failures through here so the mapping stays 1:1.
func respondError(c *fiber.Ctx, err error) error {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return respond(c, fiber.StatusNotFound, "NOT_FOUND", err)
		}
	}
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return respond(c, fiber.StatusBadRequest, "VALIDATION", err)
		}
	}
	switch {
	case errors.Is(err, domain.ErrLoginTaken):
		return respond(c, fiber.StatusConflict, "CONFLICT", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err)
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, "FORBIDDEN", err)
	case errors.Is(err, domain.ErrConversionFailed):
		return respond(c, fiber.StatusBadGateway, "UPSTREAM", err)
	}
	return respond(c, fiber.StatusInternalServerError, "INTERNAL", err)
}

func respond(c *fiber.Ctx, status int, code string, err error) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: message})
}
