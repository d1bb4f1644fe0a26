package usecase

import (
	"context"

	"explorer/internal/domain/entity"
)

// CreateCountryInput defines the data required to store a country record.
type CreateCountryInput struct {
	Name       string
	Capital    string
	Region     string
	Population int64
	Languages  []string
	Currencies []string
	Borders    []string
	Timezones  []string
	FlagURL    string
}

// ImportOutput reports the outcome of a bulk import.
type ImportOutput struct {
	Fetched  int
	Imported int
	Skipped  int
}

// CountryUsecase defines the interface for country catalogue operations.
type CountryUsecase interface {
	Create(ctx context.Context, input CreateCountryInput) (*entity.Country, error)
	Delete(ctx context.Context, name string) error
	GetByName(ctx context.Context, name string) (*entity.Country, error)
	GetAll(ctx context.Context) ([]*entity.Country, error)
	Leaderboard(ctx context.Context) ([]*entity.Country, error)
	ImportFromAPI(ctx context.Context) (*ImportOutput, error)
	ResetCountries(ctx context.Context) error
}
