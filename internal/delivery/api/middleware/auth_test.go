package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "lifeos/internal/delivery/context"
	domainerrors "lifeos/internal/domain/errors"
	"lifeos/internal/domain/service"
	mockService "lifeos/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
			Type:             service.TokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
		}, nil)
		m := NewAuthMiddleware(tokenSvc, newDiscardLogger())
		c, _ := newAuthContext("Bearer good")

		var seen uuid.UUID
		err := m.Authenticate(func(c echo.Context) error {
			seen, _ = deliverycontext.GetUserID(c)
			assert.Equal(t, userID, deliverycontext.GetUserIDFromContext(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, userID, seen)
	})

	tests := []struct {
		name   string
		header string
		setup  func(*mockService.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
		},
		{
			name:   "bad subject",
			header: "Bearer odd",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateAccessToken("odd").Return(&service.Claims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())
			c, _ := newAuthContext(tt.header)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}
