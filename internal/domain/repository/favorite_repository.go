package repository

import (
	"context"
	"errors"

	"explorer/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when the user has not favorited the country.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the operations for a user's favorites list.
// Entries reference countries by name only; resolution happens via CountryRepository.
type FavoriteRepository interface {
	// Add records a country name as favorited by a user.
	Add(ctx context.Context, favorite *entity.Favorite) error

	// Remove deletes a single favorite entry.
	Remove(ctx context.Context, userID uuid.UUID, countryName string) error

	// FindByUser returns all favorites of a user in insertion order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// Clear removes every favorite of a user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
