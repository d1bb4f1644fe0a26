package handler

import (
	"log/slog"
	"net/http"

	"explorer/internal/delivery/http/response"
	"explorer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CountryHandler holds dependencies for country catalogue handlers.
type CountryHandler struct {
	uc     usecase.CountryUsecase
	logger *slog.Logger
}

// NewCountryHandler is the constructor for CountryHandler, injected by Fx.
func NewCountryHandler(uc usecase.CountryUsecase, logger *slog.Logger) *CountryHandler {
	return &CountryHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCountryRequest struct {
	Name       string   `json:"name" validate:"required"`
	Capital    string   `json:"capital"`
	Region     string   `json:"region"`
	Population int64    `json:"population" validate:"min=0"`
	Languages  []string `json:"languages"`
	Currencies []string `json:"currencies"`
	Borders    []string `json:"borders"`
	Timezones  []string `json:"timezones"`
	FlagURL    string   `json:"flag_url"`
}

// Create stores a single country record.
func (h *CountryHandler) Create(c echo.Context) error {
	var req createCountryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	country, err := h.uc.Create(c.Request().Context(), usecase.CreateCountryInput{
		Name:       req.Name,
		Capital:    req.Capital,
		Region:     req.Region,
		Population: req.Population,
		Languages:  req.Languages,
		Currencies: req.Currencies,
		Borders:    req.Borders,
		Timezones:  req.Timezones,
		FlagURL:    req.FlagURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, country, "Country created successfully")
}

// Delete removes a country by its exact name.
func (h *CountryHandler) Delete(c echo.Context) error {
	name := c.Param("name")

	if err := h.uc.Delete(c.Request().Context(), name); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Country deleted successfully")
}

// GetByName looks up a single country.
func (h *CountryHandler) GetByName(c echo.Context) error {
	name := c.Param("name")

	country, err := h.uc.GetByName(c.Request().Context(), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, country, "Country retrieved successfully")
}

// GetAll lists every stored country in insertion order.
func (h *CountryHandler) GetAll(c echo.Context) error {
	countries, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"countries": countries,
		"count":     len(countries),
	}, "Countries retrieved successfully")
}

// Leaderboard lists every stored country by population, largest first.
func (h *CountryHandler) Leaderboard(c echo.Context) error {
	countries, err := h.uc.Leaderboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"countries": countries,
		"count":     len(countries),
	}, "Population leaderboard retrieved successfully")
}

// Import pulls the full country list from the upstream API.
func (h *CountryHandler) Import(c echo.Context) error {
	output, err := h.uc.ImportFromAPI(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"fetched":  output.Fetched,
		"imported": output.Imported,
		"skipped":  output.Skipped,
	}, "Countries imported successfully")
}

// ResetCountries drops and recreates the country storage.
func (h *CountryHandler) ResetCountries(c echo.Context) error {
	if err := h.uc.ResetCountries(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Countries storage reset")
}
