package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived session. Only a hash of the raw token
// is ever stored; the raw value is handed to the client once.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // The instant after which the session can no longer be refreshed.
	CreatedAt time.Time // When this session was created (login, registration or rotation).
}

// Expired reports whether the session is no longer usable at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// TokenPair is what a successful login, registration or refresh returns.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
