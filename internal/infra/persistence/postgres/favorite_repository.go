package postgres

import (
	"context"

	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/domain/repository"
	"explorer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add persists a favorite. The composite unique index on
// (user_id, country_name) rejects duplicates under races.
func (repo *favoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyFavorited
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required favorite information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Remove deletes a single favorite entry for a user.
func (repo *favoriteRepository) Remove(ctx context.Context, userID uuid.UUID, countryName string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND country_name = ?", userID, countryName).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove favorite")
	}

	// If no rows were affected, the favorite was not found.
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindByUser returns a user's favorites in the order they were added.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// Clear removes every favorite belonging to a user.
func (repo *favoriteRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear favorites")
	}

	return nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:          data.ID,
		UserID:      data.UserID,
		CountryName: data.CountryName,
		CreatedAt:   data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CountryName: data.CountryName,
		CreatedAt:   data.CreatedAt,
	}
}
