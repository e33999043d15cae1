package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	loggerKey       = "request_logger"
	requestIDHeader = "X-Request-ID"
)

// RequestLogger asigna un request_id a cada petición (respetando el que venga
// del cliente), deja un logger contextualizado en los locals y registra una
// línea por petición con método, ruta, status y latencia.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDHeader, requestID)

		reqLog := log.With().Str("request_id", requestID).Logger()
		c.Locals(loggerKey, &reqLog)

		start := time.Now()
		err := c.Next()

		reqLog.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
