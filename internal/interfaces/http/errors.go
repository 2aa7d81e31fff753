package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/domain"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/backend"
	"github.com/jhoicas/mietpark-admin/pkg/logger"
)

// errorStatus traduce un error a estado HTTP y código de ErrorResponse.
func errorStatus(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return fe.Code, "NOT_FOUND"
		case fiber.StatusBadRequest:
			return fe.Code, "VALIDATION"
		default:
			return fe.Code, "HTTP"
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return fiber.StatusBadGateway, "BACKEND"
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fiber.StatusBadGateway, "BACKEND"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// formError mensaje inline de un formulario: el de validación tal cual; el
// resto precedido de fallback (p. ej. "Speichern fehlgeschlagen.").
func formError(err error, fallback string) string {
	var ve *form.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback + " " + err.Error()
}

// writeError respuesta JSON de error para /api.
func writeError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: errorMessage(err)})
}

func errorMessage(err error) string {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound && strings.HasPrefix(fe.Message, "Cannot ") {
			return "Seite nicht gefunden."
		}
		return fe.Message
	}
	return err.Error()
}

type errorPage struct {
	PageData
	Status int
}

// ErrorHandler manejador de errores de la app: JSON bajo /api y /health,
// página "fehler.html" en el resto.
func ErrorHandler(views *Views, log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		status, code := errorStatus(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", RequestIDFrom(c)).
				Str("path", c.Path()).
				Str("code", code).
				Msg("error en la petición")
		}

		if views == nil || strings.HasPrefix(c.Path(), "/api") || c.Path() == "/health" {
			return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: errorMessage(err)})
		}
		page := errorPage{PageData: newPageData(c, "Fehler", ""), Status: status}
		page.Error = errorMessage(err)
		if rerr := views.Render(c, status, "fehler.html", page); rerr != nil {
			return c.Status(status).SendString(page.Error)
		}
		return nil
	}
}
