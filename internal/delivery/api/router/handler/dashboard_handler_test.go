package handler

import (
	"context"
	"net/http"
	"testing"

	mockUsecase "lifeos/internal/mocks/usecase"
	"lifeos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Stats(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodGet, "/api/v1/dashboard/stats", "")
	ownerID := authenticate(c)

	dashboardUC.EXPECT().Stats(mock.Anything, ownerID).Return(&usecase.DashboardStats{
		QuickStats: usecase.QuickStats{MonthlyProgress: 50, CompletedTasks: 1, ActiveGoals: 2},
	}, nil)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"monthlyProgress":50`)
}

func TestDashboardHandler_Slogans(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC, Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodGet, "/api/v1/dashboard/slogans", "")

	dashboardUC.EXPECT().Slogans(mock.Anything).Return([]string{"Keep going"})

	require.NoError(t, h.Slogans(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Keep going")
}

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "database up", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "database down", pingErr: context.DeadlineExceeded, wantStatus: http.StatusServiceUnavailable, wantBody: `"status":"degraded"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(HealthHandlerParams{DB: stubPinger{err: tt.pingErr}, Logger: newDiscardLogger()})
			c, rec := newTestContext(http.MethodGet, "/health", "")

			require.NoError(t, h.Check(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
