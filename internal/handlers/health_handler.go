package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"statement-analyzer/internal/errors"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the session store is reachable
type Pinger interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store  Pinger
	driver string
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store Pinger, driver string) *HealthCheckHandler {
	return &HealthCheckHandler{store: store, driver: driver}
}

// HealthCheck reports API and session store status
// @Summary Health check
// @Description Check API and session store connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,store=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (session store unreachable)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.store.HealthCheck(); err != nil {
		slog.ErrorContext(c.Request().Context(), "Session store health check failed", "driver", h.driver, "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Session store connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"store":  h.driver,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
