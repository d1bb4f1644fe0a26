package postgres

import (
	"context"

	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/domain/repository"
	"explorer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// countryRepository implements the domain.CountryRepository interface.
type countryRepository struct {
	db *gorm.DB
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &countryRepository{db: db}
}

// Create persists a single country record.
func (repo *countryRepository) Create(ctx context.Context, country *entity.Country) error {
	countryM := fromCountryDomain(country)

	if err := repo.db.WithContext(ctx).Create(countryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCountryAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("population must be non-negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required country information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create country")
	}

	country.ID = countryM.ID
	country.CreatedAt = countryM.CreatedAt
	country.UpdatedAt = countryM.UpdatedAt

	return nil
}

// CreateBatch inserts many countries at once, skipping names that already
// exist. Returns the number of rows actually inserted.
func (repo *countryRepository) CreateBatch(ctx context.Context, countries []*entity.Country) (int, error) {
	if len(countries) == 0 {
		return 0, nil
	}

	models := make([]*model.CountryModel, 0, len(countries))
	for _, country := range countries {
		models = append(models, fromCountryDomain(country))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		CreateInBatches(models, 100)

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to import countries")
	}

	return int(result.RowsAffected), nil
}

// FindByName retrieves a country by its exact, case-sensitive name.
func (repo *countryRepository) FindByName(ctx context.Context, name string) (*entity.Country, error) {
	var countryM model.CountryModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&countryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCountryDomain(&countryM), nil
}

// FindAll returns every stored country in insertion order.
func (repo *countryRepository) FindAll(ctx context.Context) ([]*entity.Country, error) {
	var countryModels []*model.CountryModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&countryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	countries := make([]*entity.Country, 0, len(countryModels))
	for _, countryM := range countryModels {
		countries = append(countries, toCountryDomain(countryM))
	}

	return countries, nil
}

// FindAllByPopulation returns every stored country ordered by population,
// largest first.
func (repo *countryRepository) FindAllByPopulation(ctx context.Context) ([]*entity.Country, error) {
	var countryModels []*model.CountryModel
	if err := repo.db.WithContext(ctx).
		Order("population DESC").
		Find(&countryModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	countries := make([]*entity.Country, 0, len(countryModels))
	for _, countryM := range countryModels {
		countries = append(countries, toCountryDomain(countryM))
	}

	return countries, nil
}

// DeleteByName removes a country by its exact name.
func (repo *countryRepository) DeleteByName(ctx context.Context, name string) error {
	result := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&model.CountryModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete country")
	}

	// If no rows were affected, the country was not found.
	if result.RowsAffected == 0 {
		return repository.ErrCountryNotFound
	}

	return nil
}

// Reset drops and recreates the countries table.
func (repo *countryRepository) Reset(ctx context.Context) error {
	db := repo.db.WithContext(ctx)

	if err := db.Migrator().DropTable(&model.CountryModel{}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to drop countries table")
	}
	if err := db.AutoMigrate(&model.CountryModel{}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to recreate countries table")
	}

	return nil
}

// --- Mapper Functions ---

func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{
		ID:         data.ID,
		Name:       data.Name,
		Capital:    data.Capital,
		Region:     data.Region,
		Population: data.Population,
		Languages:  data.Languages,
		Currencies: data.Currencies,
		Borders:    data.Borders,
		Timezones:  data.Timezones,
		FlagURL:    data.FlagURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCountryDomain(data *entity.Country) *model.CountryModel {
	if data == nil {
		return nil
	}

	return &model.CountryModel{
		ID:         data.ID,
		Name:       data.Name,
		Capital:    data.Capital,
		Region:     data.Region,
		Population: data.Population,
		Languages:  data.Languages,
		Currencies: data.Currencies,
		Borders:    data.Borders,
		Timezones:  data.Timezones,
		FlagURL:    data.FlagURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
