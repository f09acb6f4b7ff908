package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/precios-api/internal/application/dto"
	"github.com/jhoicas/precios-api/internal/domain"
)

// mapError traduce errores de dominio a status HTTP y código de error.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrSuperseded):
		return fiber.StatusConflict, "SUPERSEDED"
	case errors.Is(err, domain.ErrEmptyHistory):
		return fiber.StatusUnprocessableEntity, "EMPTY_HISTORY"
	case errors.Is(err, domain.ErrDataUnavailable):
		return fiber.StatusServiceUnavailable, "DATA_UNAVAILABLE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con dto.ErrorResponse. Los 5xx se registran en el log.
func writeError(c *fiber.Ctx, err error) error {
	status, code := mapError(err)
	msg := err.Error()
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("code", code).Msg("error en la petición")
		if status == fiber.StatusInternalServerError {
			msg = "error interno"
		}
	}
	if status == fiber.StatusServiceUnavailable {
		c.Set(fiber.HeaderRetryAfter, "5")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func badParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
}
