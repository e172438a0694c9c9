package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		keep bool
	}{
		{name: "client id", in: "req-42", keep: true},
		{name: "empty", in: ""},
		{name: "too long", in: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "control characters", in: "abc\ndef"},
		{name: "non ascii", in: "réq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRequestID(tt.in)
			if tt.keep {
				assert.Equal(t, tt.in, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID_StableWithoutMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))
}

func TestSetUserID_EnrichesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithLogger(req.Context(), logger))
	c := echo.New().NewContext(req, httptest.NewRecorder())
	userID := uuid.New()

	SetUserID(c, userID)
	GetLoggerOrDefault(c.Request().Context(), slog.Default()).Info("loaded")

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
	assert.Equal(t, userID, GetUserIDFromContext(c.Request().Context()))
	assert.Contains(t, buf.String(), "user_id="+userID.String())
}

func TestGetUserID_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, GetUserIDFromContext(context.Background()))
}
