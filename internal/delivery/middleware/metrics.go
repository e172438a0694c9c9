package middleware

import (
	"net/http"
	"time"

	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/errors"
	"lifeos/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts, latencies and in-flight requests.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler chain returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.TrackInFlight()
		defer done()

		start := time.Now()
		err := next(c)

		// Errors are rendered later by the HTTP error handler, so derive the
		// status the client is going to see.
		status := c.Response().Status
		if err != nil {
			status = statusFromError(err)
		}
		m.metrics.ObserveHTTP(c.Request().Method, c.Path(), status, time.Since(start))

		return err
	}
}

func statusFromError(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
