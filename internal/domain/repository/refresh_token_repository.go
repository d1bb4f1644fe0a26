package repository

import (
	"context"
	"errors"

	"explorer/internal/domain/entity"

	"github.com/google/uuid"
)

// Refresh token lookup errors.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)

// RefreshTokenRepository defines the operations for persisted sessions.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its stored hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash revokes a single session by token hash.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID revokes every session of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
