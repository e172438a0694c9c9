package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifeos/config"
	deliverycontext "lifeos/internal/delivery/context"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "client id is reused", header: "trace-123", keep: true},
		{name: "missing id is minted"},
		{name: "oversized id is replaced", header: strings.Repeat("x", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			err := m.Process(func(c echo.Context) error {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(echo.HeaderXRequestID)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.Equal(t, id, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.Contains(t, buf.String(), "request_id="+id)
			if tt.keep {
				assert.Equal(t, tt.header, id)
			} else {
				assert.NotEqual(t, tt.header, id)
			}
		})
	}
}

func TestMetricsMiddleware_Handle(t *testing.T) {
	m := metrics.New()
	mw := NewMetricsMiddleware(m)
	e := echo.New()
	e.Use(mw.Handle)
	e.GET("/api/v1/challenges/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.NotFound("challenge")
		}

		return c.NoContent(http.StatusNoContent)
	})

	for _, id := range []string{uuid.NewString(), "missing"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/challenges/"+id, nil))
	}

	count, err := testutil.GatherAndCount(m.Registry(), "lifeos_http_requests_total")
	require.NoError(t, err)
	// one series per status, both under the route pattern
	assert.Equal(t, 2, count)

	problems, err := testutil.GatherAndLint(m.Registry(), "lifeos_http_requests_total")
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestLoggerMiddleware_OnlyInDebug(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		wantLog bool
	}{
		{name: "debug logs", debug: true, wantLog: true},
		{name: "quiet otherwise", debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
			require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

			assert.Equal(t, tt.wantLog, strings.Contains(buf.String(), "HTTP Request"))
		})
	}
}
