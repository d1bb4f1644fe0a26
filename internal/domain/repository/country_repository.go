package repository

import (
	"context"
	"errors"

	"explorer/internal/domain/entity"
)

// ErrCountryNotFound is returned when no country matches the requested name.
var ErrCountryNotFound = errors.New("country not found")

// CountryRepository defines the standard operations for country persistence.
type CountryRepository interface {
	// Create persists a new country record.
	Create(ctx context.Context, country *entity.Country) error

	// CreateBatch inserts many records at once, skipping names that
	// already exist. Returns the number of rows actually inserted.
	CreateBatch(ctx context.Context, countries []*entity.Country) (int, error)

	// FindByName retrieves a country by its exact, case-sensitive name.
	FindByName(ctx context.Context, name string) (*entity.Country, error)

	// FindAll returns every country in insertion order.
	FindAll(ctx context.Context) ([]*entity.Country, error)

	// FindAllByPopulation returns every country ordered by population descending.
	FindAllByPopulation(ctx context.Context) ([]*entity.Country, error)

	// DeleteByName removes a country by its exact name.
	DeleteByName(ctx context.Context, name string) error

	// Reset drops and recreates the countries table. Irreversible.
	Reset(ctx context.Context) error
}
