// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lifeos/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to replace a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the account together with a fresh token pair.
type AuthOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// AuthUsecase defines account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// Refresh rotates the refresh token: the presented one is revoked and a new pair issued.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// ChangePassword also ends every session of the user.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	// DeleteAccount removes the user and every document they own in one transaction.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	// PurgeExpiredSessions deletes expired sessions and reports how many went.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
