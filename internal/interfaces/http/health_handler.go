package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker comprueba el backend REST. Lo implementa *backend.Client.
type HealthChecker interface {
	Health(ctx context.Context) error
	BaseURL() string
}

// HealthHandler estado propio y alcanzabilidad del backend.
type HealthHandler struct {
	backend HealthChecker
	service string
	timeout time.Duration
}

// NewHealthHandler construye el handler.
func NewHealthHandler(backend HealthChecker, service string) *HealthHandler {
	return &HealthHandler{backend: backend, service: service, timeout: 3 * time.Second}
}

// Check godoc
// @Summary      Estado del servicio y del backend
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":      "ok",
		"service":     h.service,
		"backend":     "ok",
		"backend_url": h.backend.BaseURL(),
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()
	if err := h.backend.Health(ctx); err != nil {
		body["status"] = "degraded"
		body["backend"] = "nicht erreichbar"
		body["backend_error"] = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.JSON(body)
}
