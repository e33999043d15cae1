package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain"
)

// fail traduce errores de dominio a respuestas HTTP. Cualquier error no
// reconocido responde un 500 genérico; el detalle va solo al log, nunca al
// cliente.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_FIELDS", Message: "faltan campos requeridos",
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "INVALID_CREDENTIALS", Message: domain.ErrInvalidCredentials.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrUnavailable):
		// El detalle (DSN, host, causa) queda en el log; el cliente solo ve
		// que el servicio no pudo responder.
		requestLog(c).Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("almacén no disponible")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "UNAVAILABLE", Message: "error en el servidor",
		})
	default:
		requestLog(c).Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error en el servidor",
		})
	}
}

// requestLog devuelve el logger con request_id que dejó el middleware, o uno
// deshabilitado si la ruta no pasó por él.
func requestLog(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(loggerKey).(*zerolog.Logger); ok {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}
