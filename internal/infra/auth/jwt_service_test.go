package auth

import (
	"testing"
	"time"

	"lifeos/config"
	"lifeos/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	userID := uuid.New()

	tokens, err := jwtService.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.True(t, tokens.RefreshExpiresAt.After(tokens.AccessExpiresAt))

	accessClaims, err := jwtService.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	gotID, err := accessClaims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.Equal(t, time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_RejectsSwappedTokenTypes(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	tokens, err := jwtService.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(tokens.RefreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issued := time.Now()
	impl.now = func() time.Time { return issued }

	tokens, err := impl.GenerateTokens(uuid.New())
	require.NoError(t, err)

	impl.now = func() time.Time { return issued.Add(2 * time.Minute) }

	_, err = impl.ValidateAccessToken(tokens.AccessToken)
	assert.Error(t, err)

	_, err = impl.ValidateRefreshToken(tokens.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	first := jwtService.HashToken("token-a")
	assert.Len(t, first, 64)
	assert.Equal(t, first, jwtService.HashToken("token-a"))
	assert.NotEqual(t, first, jwtService.HashToken("token-b"))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.SecretKey.Refresh = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg.SecretKey.Refresh = cfg.SecretKey.Access
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
