package service

import (
	"context"

	"explorer/internal/domain/entity"
)

// CountrySource abstracts the third-party country-information API.
// The domain only sees fully mapped Country entities; payload shape and
// transport details stay in the infrastructure layer.
type CountrySource interface {
	// FetchAll retrieves every country known to the external source.
	FetchAll(ctx context.Context) ([]*entity.Country, error)
}
