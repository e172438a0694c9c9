package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeos/internal/delivery/api/response"
	"lifeos/internal/delivery/api/validator"
	domainerrors "lifeos/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func renderError(t *testing.T, err error) (int, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("app error keeps details", func(t *testing.T) {
		code, body := renderError(t, errors.Wrap(domainerrors.NotFound("challenge"), "failed to load"))

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.NotEmpty(t, body.Meta.RequestID)
	})

	t.Run("unauthorized drops details", func(t *testing.T) {
		code, body := renderError(t, domainerrors.ErrUnauthorized.WithDetails("token expired"))

		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("storage error is hidden", func(t *testing.T) {
		code, body := renderError(t, domainerrors.NewStorageError(errors.New("dial tcp: refused"), "failed to save"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Nil(t, body.Error.Details)
		assert.NotContains(t, body.Error.Message, "dial tcp")
	})

	t.Run("field errors", func(t *testing.T) {
		code, body := renderError(t, validator.FieldErrors{"name": "required"})

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, validator.ErrorCode, body.Error.Code)
		assert.Equal(t, map[string]any{"name": "required"}, body.Error.Details)
	})

	t.Run("echo error", func(t *testing.T) {
		code, body := renderError(t, echo.ErrMethodNotAllowed)

		assert.Equal(t, http.StatusMethodNotAllowed, code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		code, body := renderError(t, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	})
}
