package backend

import (
	"fmt"
	"net/http"

	"github.com/jhoicas/mietpark-admin/internal/domain"
)

// APIError respuesta no-2xx del backend. Body es el texto de la respuesta, sin interpretar.
type APIError struct {
	Method     string
	Path       string
	Status     int
	StatusText string
	Body       string
}

// Error devuelve "<METHOD> <path> <status> <statusText>: <body>".
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s %d %s: %s", e.Method, e.Path, e.Status, e.StatusText, e.Body)
}

// Unwrap permite errors.Is contra los errores de dominio.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return nil
	}
}
