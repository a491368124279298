package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key en c.Locals.
const LocalRequestID = "request_id"

// RequestID respeta el X-Request-ID entrante o genera uno nuevo (UUID v4).
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el id de la petición (después de RequestID).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// RequestLogger registra cada petición con método, ruta, status y duración.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler escriba la respuesta antes de leer el status
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("took", time.Since(start)).
			Msg("http")
		return nil
	}
}
