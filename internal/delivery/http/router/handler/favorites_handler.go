package handler

import (
	"log/slog"
	"net/http"

	"explorer/internal/delivery/http/response"
	"explorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoritesHandler holds dependencies for per-user favorites handlers.
type FavoritesHandler struct {
	uc     usecase.FavoritesUsecase
	logger *slog.Logger
}

// NewFavoritesHandler is the constructor for FavoritesHandler, injected by Fx.
func NewFavoritesHandler(uc usecase.FavoritesUsecase, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		uc:     uc,
		logger: logger,
	}
}

type favoriteRequest struct {
	CountryName string `json:"country_name" validate:"required"`
}

// Add puts a stored country on the user's favorites list.
func (h *FavoritesHandler) Add(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Add(c.Request().Context(), userID, req.CountryName); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Country added to favorites")
}

// Remove takes a country off the user's favorites list.
func (h *FavoritesHandler) Remove(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), userID, req.CountryName); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Country removed from favorites")
}

// List returns the user's favorites resolved against the country store.
func (h *FavoritesHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"countries":  output.Countries,
		"count":      len(output.Countries),
		"unresolved": output.Unresolved,
	}, "Favorites retrieved successfully")
}

// Clear removes every favorite the user has.
func (h *FavoritesHandler) Clear(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Clear(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorites cleared")
}

// Stats reports the favorites count and combined population.
func (h *FavoritesHandler) Stats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Stats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"favorites_length":     output.Length,
		"favorites_population": output.Population,
		"unresolved":           output.Unresolved,
	}, "Favorites stats retrieved successfully")
}

// Compare builds the pairwise comparison of two favorited countries,
// named by the country1 and country2 query parameters.
func (h *FavoritesHandler) Compare(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	first := c.QueryParam("country1")
	second := c.QueryParam("country2")
	if first == "" || second == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Both country1 and country2 query parameters are required")
	}

	output, err := h.uc.Compare(c.Request().Context(), userID, first, second)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"countries":             output.Countries,
		"population_difference": output.PopulationDifference,
		"shared_languages":      output.SharedLanguages,
		"shared_currencies":     output.SharedCurrencies,
		"regions":               output.Regions,
		"flags":                 output.Flags,
	}, "Comparison built successfully")
}
