package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP con cuerpo dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrLogoTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "LOGO_TOO_LARGE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidLogo):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "INVALID_LOGO", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
