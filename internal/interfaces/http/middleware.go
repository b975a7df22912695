package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/invorya/stock-alerts/pkg/logger"
)

const localsRequestID = "request_id"

// RequestID asigna un identificador por petición (respeta X-Request-ID entrante)
// y lo expone en locals y en la cabecera de respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(localsRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el request id asignado por RequestID (vacío si no corrió).
func GetRequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(localsRequestID).(string); ok {
		return v
	}
	return ""
}

// RequestLogger registra cada petición con método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")

		return err
	}
}
