package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
)

// RateLimit limita la frecuencia de un endpoint costoso (exportación a PDF) con un token
// bucket compartido. Sin tokens disponibles responde 429 sin esperar.
func RateLimit(limiter *rate.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas exportaciones, intente de nuevo en unos segundos",
			})
		}
		return c.Next()
	}
}
