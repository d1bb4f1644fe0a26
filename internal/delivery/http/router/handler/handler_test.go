package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	explorermw "explorer/internal/delivery/http/middleware"
	"explorer/internal/delivery/http/validator"
	"explorer/internal/domain/entity"
	domainerrors "explorer/internal/domain/errors"
	"explorer/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = explorermw.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

// authInject places a user on the context the way the auth middleware does.
func authInject(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(explorermw.ContextKeyUserID, userID)
			c.Set(explorermw.ContextKeyUsername, "alice")

			return next(c)
		}
	}
}

// --- usecase stubs ---

type stubUserUsecase struct {
	usecase.UserUsecase

	registerFn func(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error)
	loginFn    func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
	logoutFn   func(ctx context.Context, input usecase.LogoutInput) error
}

func (s *stubUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubUserUsecase) Logout(ctx context.Context, input usecase.LogoutInput) error {
	return s.logoutFn(ctx, input)
}

type stubCountryUsecase struct {
	usecase.CountryUsecase

	createFn func(ctx context.Context, input usecase.CreateCountryInput) (*entity.Country, error)
	deleteFn func(ctx context.Context, name string) error
	getAllFn func(ctx context.Context) ([]*entity.Country, error)
}

func (s *stubCountryUsecase) Create(ctx context.Context, input usecase.CreateCountryInput) (*entity.Country, error) {
	return s.createFn(ctx, input)
}

func (s *stubCountryUsecase) Delete(ctx context.Context, name string) error {
	return s.deleteFn(ctx, name)
}

func (s *stubCountryUsecase) GetAll(ctx context.Context) ([]*entity.Country, error) {
	return s.getAllFn(ctx)
}

type stubFavoritesUsecase struct {
	usecase.FavoritesUsecase

	addFn     func(ctx context.Context, userID uuid.UUID, countryName string) error
	statsFn   func(ctx context.Context, userID uuid.UUID) (*usecase.FavoritesStatsOutput, error)
	compareFn func(ctx context.Context, userID uuid.UUID, first, second string) (*usecase.ComparisonOutput, error)
}

func (s *stubFavoritesUsecase) Add(ctx context.Context, userID uuid.UUID, countryName string) error {
	return s.addFn(ctx, userID, countryName)
}

func (s *stubFavoritesUsecase) Stats(ctx context.Context, userID uuid.UUID) (*usecase.FavoritesStatsOutput, error) {
	return s.statsFn(ctx, userID)
}

func (s *stubFavoritesUsecase) Compare(ctx context.Context, userID uuid.UUID, first, second string) (*usecase.ComparisonOutput, error) {
	return s.compareFn(ctx, userID, first, second)
}

// --- user handler ---

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	uc := &stubUserUsecase{
		registerFn: func(_ context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			assert.Equal(t, "alice", input.Username)

			return &usecase.RegisterOutput{User: &entity.User{ID: uuid.New(), Username: input.Username}}, nil
		},
	}
	e.PUT("/api/create-user", NewUserHandler(uc, discardLogger()).Register)

	req := httptest.NewRequest(http.MethodPut, "/api/create-user", strings.NewReader(`{"username":"alice","password":"str0ngpass"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_DuplicateRendersConflictEnvelope(t *testing.T) {
	e := newTestEcho()
	uc := &stubUserUsecase{
		registerFn: func(context.Context, usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			return nil, domainerrors.ErrUserAlreadyExists
		},
	}
	e.PUT("/api/create-user", NewUserHandler(uc, discardLogger()).Register)

	req := httptest.NewRequest(http.MethodPut, "/api/create-user", strings.NewReader(`{"username":"alice","password":"str0ngpass"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "USER_ALREADY_EXISTS", errInfo["code"])
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	uc := &stubUserUsecase{}
	e.PUT("/api/create-user", NewUserHandler(uc, discardLogger()).Register)

	req := httptest.NewRequest(http.MethodPut, "/api/create-user", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	uc := &stubUserUsecase{
		loginFn: func(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}
	e.POST("/api/login", NewUserHandler(uc, discardLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "invalid username or password", body["message"])
}

func TestUserHandler_Logout_Success(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()
	uc := &stubUserUsecase{
		logoutFn: func(_ context.Context, input usecase.LogoutInput) error {
			assert.Equal(t, userID, input.UserID)

			return nil
		},
	}
	e.POST("/api/logout", NewUserHandler(uc, discardLogger()).Logout, authInject(userID))

	req := httptest.NewRequest(http.MethodPost, "/api/logout", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
}

// --- country handler ---

func TestCountryHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	uc := &stubCountryUsecase{
		createFn: func(_ context.Context, input usecase.CreateCountryInput) (*entity.Country, error) {
			return &entity.Country{Name: input.Name, Population: input.Population}, nil
		},
	}
	e.POST("/api/create-country", NewCountryHandler(uc, discardLogger()).Create)

	req := httptest.NewRequest(http.MethodPost, "/api/create-country", strings.NewReader(`{"name":"Japan","population":126476461}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Japan", data["name"])
}

func TestCountryHandler_Create_NegativePopulationRejected(t *testing.T) {
	e := newTestEcho()
	uc := &stubCountryUsecase{}
	e.POST("/api/create-country", NewCountryHandler(uc, discardLogger()).Create)

	req := httptest.NewRequest(http.MethodPost, "/api/create-country", strings.NewReader(`{"name":"Atlantis","population":-5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCountryHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	uc := &stubCountryUsecase{
		deleteFn: func(_ context.Context, name string) error {
			assert.Equal(t, "Atlantis", name)

			return domainerrors.ErrCountryNotFound
		},
	}
	e.DELETE("/api/delete-country/:name", NewCountryHandler(uc, discardLogger()).Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/delete-country/Atlantis", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "COUNTRY_NOT_FOUND", errInfo["code"])
}

func TestCountryHandler_GetAll(t *testing.T) {
	e := newTestEcho()
	uc := &stubCountryUsecase{
		getAllFn: func(context.Context) ([]*entity.Country, error) {
			return []*entity.Country{{Name: "Japan"}, {Name: "Canada"}}, nil
		},
	}
	e.GET("/api/get-all-countries-from-database", NewCountryHandler(uc, discardLogger()).GetAll)

	req := httptest.NewRequest(http.MethodGet, "/api/get-all-countries-from-database", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["count"])
}

// --- favorites handler ---

func TestFavoritesHandler_Add_Success(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()
	uc := &stubFavoritesUsecase{
		addFn: func(_ context.Context, gotUserID uuid.UUID, countryName string) error {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, "Japan", countryName)

			return nil
		},
	}
	e.POST("/api/add-country-to-favorites", NewFavoritesHandler(uc, discardLogger()).Add, authInject(userID))

	req := httptest.NewRequest(http.MethodPost, "/api/add-country-to-favorites", strings.NewReader(`{"country_name":"Japan"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFavoritesHandler_Add_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	uc := &stubFavoritesUsecase{}
	e.POST("/api/add-country-to-favorites", NewFavoritesHandler(uc, discardLogger()).Add)

	req := httptest.NewRequest(http.MethodPost, "/api/add-country-to-favorites", strings.NewReader(`{"country_name":"Japan"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFavoritesHandler_Stats(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()
	uc := &stubFavoritesUsecase{
		statsFn: func(context.Context, uuid.UUID) (*usecase.FavoritesStatsOutput, error) {
			return &usecase.FavoritesStatsOutput{Length: 2, Population: 164476461}, nil
		},
	}
	e.GET("/api/get-favorites-length-population", NewFavoritesHandler(uc, discardLogger()).Stats, authInject(userID))

	req := httptest.NewRequest(http.MethodGet, "/api/get-favorites-length-population", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["favorites_length"])
	assert.Equal(t, float64(164476461), data["favorites_population"])
}

func TestFavoritesHandler_Compare_RequiresBothNames(t *testing.T) {
	e := newTestEcho()
	uc := &stubFavoritesUsecase{}
	e.GET("/api/compare-two-favorites", NewFavoritesHandler(uc, discardLogger()).Compare, authInject(uuid.New()))

	req := httptest.NewRequest(http.MethodGet, "/api/compare-two-favorites?country1=Japan", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFavoritesHandler_Compare_Success(t *testing.T) {
	e := newTestEcho()
	userID := uuid.New()
	uc := &stubFavoritesUsecase{
		compareFn: func(_ context.Context, _ uuid.UUID, first, second string) (*usecase.ComparisonOutput, error) {
			assert.Equal(t, "Japan", first)
			assert.Equal(t, "Canada", second)

			return &usecase.ComparisonOutput{
				Countries:            []string{"Japan", "Canada"},
				PopulationDifference: 88476461,
				SharedLanguages:      []string{},
				SharedCurrencies:     []string{},
				Regions:              map[string]string{"Japan": "Asia", "Canada": "Americas"},
				Flags:                map[string]string{"Japan": "jp.png", "Canada": "ca.png"},
			}, nil
		},
	}
	e.GET("/api/compare-two-favorites", NewFavoritesHandler(uc, discardLogger()).Compare, authInject(userID))

	req := httptest.NewRequest(http.MethodGet, "/api/compare-two-favorites?country1=Japan&country2=Canada", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(88476461), data["population_difference"])
}
