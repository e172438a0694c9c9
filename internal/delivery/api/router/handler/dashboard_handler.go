package handler

import (
	"log/slog"
	"net/http"

	"lifeos/internal/delivery/api/response"
	"lifeos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the cross-module overview
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// Stats returns headline figures, per-module counters and recent activity
func (h *DashboardHandler) Stats(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.dashboardUC.Stats(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Slogans returns the motivational slogans
func (h *DashboardHandler) Slogans(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboardUC.Slogans(c.Request().Context()))
}

// Progress returns six months of completions and the financial overview
func (h *DashboardHandler) Progress(c echo.Context) error {
	ownerID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	overview, err := h.dashboardUC.Progress(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}
