package usecase

import (
	"context"

	"explorer/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoritesListOutput returns the resolved favorite countries in the order
// they were added, plus the names whose country rows no longer exist.
type FavoritesListOutput struct {
	Countries  []*entity.Country
	Unresolved []string
}

// FavoritesStatsOutput aggregates over a user's favorites. Unresolved
// favorites count toward Length but contribute nothing to Population.
type FavoritesStatsOutput struct {
	Length     int
	Population int64
	Unresolved int
}

// ComparisonOutput holds the pairwise comparison of two favorited countries.
type ComparisonOutput struct {
	Countries            []string
	PopulationDifference int64
	SharedLanguages      []string
	SharedCurrencies     []string
	Regions              map[string]string
	Flags                map[string]string
}

// FavoritesUsecase defines the interface for per-user favorites operations.
type FavoritesUsecase interface {
	Add(ctx context.Context, userID uuid.UUID, countryName string) error
	Remove(ctx context.Context, userID uuid.UUID, countryName string) error
	List(ctx context.Context, userID uuid.UUID) (*FavoritesListOutput, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (*FavoritesStatsOutput, error)
	Compare(ctx context.Context, userID uuid.UUID, first, second string) (*ComparisonOutput, error)
}
