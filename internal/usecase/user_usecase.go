// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"explorer/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput carries the authenticated user's new password.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// LogoutInput carries the refresh token to revoke. When empty, every
// session belonging to the user is revoked.
type LogoutInput struct {
	UserID       uuid.UUID
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input LogoutInput) error
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	ResetUsers(ctx context.Context) error
}
