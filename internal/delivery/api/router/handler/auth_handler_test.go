package handler

import (
	"net/http"
	"testing"
	"time"

	"lifeos/internal/domain/entity"
	domainerrors "lifeos/internal/domain/errors"
	mockUsecase "lifeos/internal/mocks/usecase"
	"lifeos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "ada", Email: "ada@example.com", Password: "Str0ng!pass"}).
		Return(&usecase.AuthOutput{User: user, Tokens: &entity.TokenPair{AccessToken: "access", RefreshToken: "refresh"}}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"username":"ada","email":"ada@example.com","password":"Str0ng!pass"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"accessToken":"access"`)
	assert.Contains(t, rec.Body.String(), `"username":"ada"`)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"username":"ad","email":"not-an-email","password":"x"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	details := body["error"].(map[string]any)["details"].(map[string]any)
	assert.Contains(t, details, "username")
	assert.Contains(t, details, "email")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me_RequiresUser(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/auth/me", "")

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestAuthHandler_ChangePassword_RejectsUnknownFields(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(http.MethodPut, "/api/v1/auth/password",
		`{"currentPassword":"old","newPassword":"New!pass1","admin":true}`)
	authenticate(c)

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}
