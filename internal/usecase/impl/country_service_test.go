package impl

import (
	"context"
	"testing"

	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/domain/repository"
	mockRepo "explorer/internal/mocks/repository"
	mockSvc "explorer/internal/mocks/service"
	"explorer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCountryService(t *testing.T) (usecase.CountryUsecase, *mockRepo.MockCountryRepository, *mockSvc.MockCountrySource) {
	countryRepo := mockRepo.NewMockCountryRepository(t)
	countrySource := mockSvc.NewMockCountrySource(t)

	service := NewCountryService(CountryServiceParams{
		CountryRepo:   countryRepo,
		CountrySource: countrySource,
		Logger:        newDiscardLogger(),
	})

	return service, countryRepo, countrySource
}

func TestCountryService_Create_Success(t *testing.T) {
	service, countryRepo, _ := newCountryService(t)
	ctx := context.Background()

	countryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Country")).
		Return(nil)

	country, err := service.Create(ctx, usecase.CreateCountryInput{
		Name:       "Japan",
		Capital:    "Tokyo",
		Region:     "Asia",
		Population: 126476461,
		Languages:  []string{"Japanese"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Japan", country.Name)
	assert.Equal(t, int64(126476461), country.Population)
}

func TestCountryService_Create_MissingName(t *testing.T) {
	service, _, _ := newCountryService(t)

	_, err := service.Create(context.Background(), usecase.CreateCountryInput{Population: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCountryService_Create_NegativePopulation(t *testing.T) {
	service, _, _ := newCountryService(t)

	_, err := service.Create(context.Background(), usecase.CreateCountryInput{Name: "Atlantis", Population: -1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCountryService_Create_Duplicate(t *testing.T) {
	service, countryRepo, _ := newCountryService(t)
	ctx := context.Background()

	countryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Country")).
		Return(domainerrors.ErrCountryAlreadyExists)

	_, err := service.Create(ctx, usecase.CreateCountryInput{Name: "Japan"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCountryAlreadyExists)
}

func TestCountryService_Delete_NotFound(t *testing.T) {
	service, countryRepo, _ := newCountryService(t)
	ctx := context.Background()

	countryRepo.EXPECT().DeleteByName(ctx, "Atlantis").Return(repository.ErrCountryNotFound)

	err := service.Delete(ctx, "Atlantis")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCountryNotFound)
}

func TestCountryService_GetByName(t *testing.T) {
	service, countryRepo, _ := newCountryService(t)
	ctx := context.Background()
	japan := &entity.Country{Name: "Japan"}

	countryRepo.EXPECT().FindByName(ctx, "Japan").Return(japan, nil)

	country, err := service.GetByName(ctx, "Japan")

	require.NoError(t, err)
	assert.Equal(t, japan, country)
}

func TestCountryService_GetAll_InsertionOrder(t *testing.T) {
	service, countryRepo, _ := newCountryService(t)
	ctx := context.Background()
	stored := []*entity.Country{{Name: "Japan"}, {Name: "Canada"}}

	countryRepo.EXPECT().FindAll(ctx).Return(stored, nil)

	countries, err := service.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, countries)
}

func TestCountryService_Leaderboard(t *testing.T) {
	service, countryRepo, _ := newCountryService(t)
	ctx := context.Background()
	ordered := []*entity.Country{
		{Name: "Japan", Population: 126476461},
		{Name: "Canada", Population: 38000000},
	}

	countryRepo.EXPECT().FindAllByPopulation(ctx).Return(ordered, nil)

	countries, err := service.Leaderboard(ctx)

	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Japan", countries[0].Name)
}

func TestCountryService_ImportFromAPI_Success(t *testing.T) {
	service, countryRepo, countrySource := newCountryService(t)
	ctx := context.Background()
	fetched := []*entity.Country{{Name: "Japan"}, {Name: "Canada"}, {Name: "France"}}

	countrySource.EXPECT().FetchAll(ctx).Return(fetched, nil)
	countryRepo.EXPECT().CreateBatch(ctx, fetched).Return(2, nil)

	output, err := service.ImportFromAPI(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Fetched)
	assert.Equal(t, 2, output.Imported)
	assert.Equal(t, 1, output.Skipped)
}

func TestCountryService_ImportFromAPI_FetchFailure(t *testing.T) {
	service, _, countrySource := newCountryService(t)
	ctx := context.Background()

	countrySource.EXPECT().FetchAll(ctx).Return(nil, assert.AnError)

	_, err := service.ImportFromAPI(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCountryImportFailed)
}

func TestCountryService_ResetCountries(t *testing.T) {
	service, countryRepo, _ := newCountryService(t)
	ctx := context.Background()

	countryRepo.EXPECT().Reset(ctx).Return(nil)

	require.NoError(t, service.ResetCountries(ctx))
}
