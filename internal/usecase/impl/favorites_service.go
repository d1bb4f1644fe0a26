package impl

import (
	"context"
	"log/slog"

	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/domain/repository"
	"explorer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoritesService implements the FavoritesUsecase interface.
type favoritesService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	countryRepo  repository.CountryRepository
	logger       *slog.Logger
}

// FavoritesServiceParams holds dependencies for favoritesService, injected by Fx.
type FavoritesServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	CountryRepo  repository.CountryRepository
	Logger       *slog.Logger
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	return &favoritesService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		countryRepo:  params.CountryRepo,
		logger:       params.Logger,
	}
}

// Add favorites a stored country for the user. The country must exist at
// the time of the call; the composite unique index rejects duplicates.
func (srv *favoritesService) Add(ctx context.Context, userID uuid.UUID, countryName string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CountryRepo().FindByName(ctx, countryName); err != nil {
			if errors.Is(err, repository.ErrCountryNotFound) {
				return domainerrors.ErrCountryNotFound
			}

			return errors.Wrap(err, "failed to look up country for favoriting")
		}

		return repoFactory.FavoriteRepo().Add(ctx, &entity.Favorite{
			UserID:      userID,
			CountryName: countryName,
		})
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Country favorited", slog.Any("userID", userID), slog.String("country", countryName))

	return nil
}

// Remove deletes one favorite from the user's list.
func (srv *favoritesService) Remove(ctx context.Context, userID uuid.UUID, countryName string) error {
	err := srv.favoriteRepo.Remove(ctx, userID, countryName)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return err
	}

	srv.logger.Info("Favorite removed", slog.Any("userID", userID), slog.String("country", countryName))

	return nil
}

// List resolves the user's favorites against the country store, keeping
// insertion order. Names whose country row has since been deleted are
// reported separately instead of being dropped silently.
func (srv *favoritesService) List(ctx context.Context, userID uuid.UUID) (*usecase.FavoritesListOutput, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	output := &usecase.FavoritesListOutput{
		Countries:  make([]*entity.Country, 0, len(favorites)),
		Unresolved: []string{},
	}

	for _, favorite := range favorites {
		country, err := srv.resolveFavorite(ctx, favorite.CountryName)
		if err != nil {
			return nil, err
		}
		if country == nil {
			output.Unresolved = append(output.Unresolved, favorite.CountryName)

			continue
		}
		output.Countries = append(output.Countries, country)
	}

	return output, nil
}

// Clear removes every favorite the user has.
func (srv *favoritesService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := srv.favoriteRepo.Clear(ctx, userID); err != nil {
		return err
	}

	srv.logger.Info("Favorites cleared", slog.Any("userID", userID))

	return nil
}

// Stats aggregates over the user's favorites. An unresolved favorite still
// counts toward the length but adds nothing to the population sum.
func (srv *favoritesService) Stats(ctx context.Context, userID uuid.UUID) (*usecase.FavoritesStatsOutput, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites for stats")
	}

	output := &usecase.FavoritesStatsOutput{Length: len(favorites)}

	for _, favorite := range favorites {
		country, err := srv.resolveFavorite(ctx, favorite.CountryName)
		if err != nil {
			return nil, err
		}
		if country == nil {
			output.Unresolved++

			continue
		}
		output.Population += country.Population
	}

	return output, nil
}

// Compare builds the pairwise comparison of two favorited countries. Both
// names must be on the user's list and still resolvable.
func (srv *favoritesService) Compare(ctx context.Context, userID uuid.UUID, first, second string) (*usecase.ComparisonOutput, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites for comparison")
	}

	favorited := make(map[string]struct{}, len(favorites))
	for _, favorite := range favorites {
		favorited[favorite.CountryName] = struct{}{}
	}

	for _, name := range []string{first, second} {
		if _, ok := favorited[name]; !ok {
			return nil, domainerrors.ErrFavoriteNotFound.WrapMessage(name + " is not in your favorites")
		}
	}

	firstCountry, err := srv.resolveFavorite(ctx, first)
	if err != nil {
		return nil, err
	}
	secondCountry, err := srv.resolveFavorite(ctx, second)
	if err != nil {
		return nil, err
	}
	if firstCountry == nil || secondCountry == nil {
		return nil, domainerrors.ErrCountryNotFound.WrapMessage("a favorited country is no longer stored")
	}

	diff := firstCountry.Population - secondCountry.Population
	if diff < 0 {
		diff = -diff
	}

	return &usecase.ComparisonOutput{
		Countries:            []string{firstCountry.Name, secondCountry.Name},
		PopulationDifference: diff,
		SharedLanguages:      intersect(firstCountry.Languages, secondCountry.Languages),
		SharedCurrencies:     intersect(firstCountry.Currencies, secondCountry.Currencies),
		Regions: map[string]string{
			firstCountry.Name:  firstCountry.Region,
			secondCountry.Name: secondCountry.Region,
		},
		Flags: map[string]string{
			firstCountry.Name:  firstCountry.FlagURL,
			secondCountry.Name: secondCountry.FlagURL,
		},
	}, nil
}

// resolveFavorite maps a favorite's country name to its stored record.
// A nil country with a nil error means the name is dangling.
func (srv *favoritesService) resolveFavorite(ctx context.Context, countryName string) (*entity.Country, error) {
	country, err := srv.countryRepo.FindByName(ctx, countryName)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve favorite")
	}

	return country, nil
}

// intersect returns the elements of a that also appear in b, preserving
// a's order and deduplicating.
func intersect(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, item := range b {
		inB[item] = struct{}{}
	}

	shared := []string{}
	seen := make(map[string]struct{}, len(a))
	for _, item := range a {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if _, ok := inB[item]; ok {
			shared = append(shared, item)
		}
	}

	return shared
}
