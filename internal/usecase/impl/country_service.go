package impl

import (
	"context"
	"log/slog"

	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/domain/repository"
	"explorer/internal/domain/service"
	"explorer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// countryService implements the CountryUsecase interface.
type countryService struct {
	countryRepo   repository.CountryRepository
	countrySource service.CountrySource
	logger        *slog.Logger
}

// CountryServiceParams holds dependencies for countryService, injected by Fx.
type CountryServiceParams struct {
	fx.In

	CountryRepo   repository.CountryRepository
	CountrySource service.CountrySource
	Logger        *slog.Logger
}

// NewCountryService is the constructor for countryService.
func NewCountryService(params CountryServiceParams) usecase.CountryUsecase {
	return &countryService{
		countryRepo:   params.CountryRepo,
		countrySource: params.CountrySource,
		logger:        params.Logger,
	}
}

// Create stores a single country record.
func (srv *countryService) Create(ctx context.Context, input usecase.CreateCountryInput) (*entity.Country, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("country name is required")
	}
	if input.Population < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("population must be non-negative")
	}

	country := &entity.Country{
		Name:       input.Name,
		Capital:    input.Capital,
		Region:     input.Region,
		Population: input.Population,
		Languages:  input.Languages,
		Currencies: input.Currencies,
		Borders:    input.Borders,
		Timezones:  input.Timezones,
		FlagURL:    input.FlagURL,
	}

	if err := srv.countryRepo.Create(ctx, country); err != nil {
		return nil, err
	}

	srv.logger.Info("Country created", slog.String("name", country.Name))

	return country, nil
}

// Delete removes a country by exact name match.
func (srv *countryService) Delete(ctx context.Context, name string) error {
	err := srv.countryRepo.DeleteByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return domainerrors.ErrCountryNotFound
		}

		return err
	}

	srv.logger.Info("Country deleted", slog.String("name", name))

	return nil
}

// GetByName looks up a single country by exact name match.
func (srv *countryService) GetByName(ctx context.Context, name string) (*entity.Country, error) {
	country, err := srv.countryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return nil, domainerrors.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to look up country")
	}

	return country, nil
}

// GetAll lists every stored country in insertion order.
func (srv *countryService) GetAll(ctx context.Context) ([]*entity.Country, error) {
	countries, err := srv.countryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

// Leaderboard lists every stored country by population, largest first.
func (srv *countryService) Leaderboard(ctx context.Context) ([]*entity.Country, error) {
	countries, err := srv.countryRepo.FindAllByPopulation(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build population leaderboard")
	}

	return countries, nil
}

// ImportFromAPI pulls the full country list from the upstream API and
// inserts the records that are not already stored.
func (srv *countryService) ImportFromAPI(ctx context.Context) (*usecase.ImportOutput, error) {
	fetched, err := srv.countrySource.FetchAll(ctx)
	if err != nil {
		srv.logger.Error("Country import fetch failed", slog.Any("error", err))

		return nil, domainerrors.ErrCountryImportFailed.WrapMessage(err.Error())
	}

	imported, err := srv.countryRepo.CreateBatch(ctx, fetched)
	if err != nil {
		return nil, err
	}

	output := &usecase.ImportOutput{
		Fetched:  len(fetched),
		Imported: imported,
		Skipped:  len(fetched) - imported,
	}

	srv.logger.Info("Country import finished",
		slog.Int("fetched", output.Fetched),
		slog.Int("imported", output.Imported),
		slog.Int("skipped", output.Skipped),
	)

	return output, nil
}

// ResetCountries drops and recreates the country storage.
func (srv *countryService) ResetCountries(ctx context.Context) error {
	if err := srv.countryRepo.Reset(ctx); err != nil {
		return err
	}

	srv.logger.Warn("Countries storage reset")

	return nil
}
