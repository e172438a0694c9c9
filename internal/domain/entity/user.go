package entity

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "lifeos/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
)

// User is an account. Every aggregate and document is owned by exactly one user.
type User struct {
	ID           uuid.UUID // The identifier every owned document refers to.
	Username     string    // Unique display handle, 3 to 50 characters.
	Email        string    // Unique, stored lower-cased; used to log in.
	PasswordHash string    // bcrypt hash, never serialised.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates identity fields and builds an account around an already
// hashed password.
func NewUser(username, email, passwordHash string, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return nil, domainerrors.Validationf("username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now = now.UTC()

	return &User{
		ID:           NewID(),
		Username:     username,
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ChangePasswordHash replaces the stored hash.
func (u *User) ChangePasswordHash(hash string, now time.Time) {
	u.PasswordHash = hash
	if now = now.UTC(); now.After(u.UpdatedAt) {
		u.UpdatedAt = now
	}
}

// NormalizeEmail trims, lower-cases and syntax-checks an email address.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", domainerrors.Validationf("email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domainerrors.Validationf("email is not a valid address")
	}

	return email, nil
}
