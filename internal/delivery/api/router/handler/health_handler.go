package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"lifeos/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     Pinger
	Logger *slog.Logger
}

// HealthHandler reports liveness of the service and its database
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, logger: params.Logger}
}

// HealthStatus is the body of the health endpoint
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check pings the database
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return response.Success(c, http.StatusServiceUnavailable, HealthStatus{Status: "degraded", Database: "unreachable"})
	}

	return response.Success(c, http.StatusOK, HealthStatus{Status: "ok", Database: "ok"})
}
