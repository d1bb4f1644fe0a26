// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"explorer/internal/delivery/http/middleware"
	"explorer/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	CountryHandler   *handler.CountryHandler
	FavoritesHandler *handler.FavoritesHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	countryHandler   *handler.CountryHandler
	favoritesHandler *handler.FavoritesHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		countryHandler:   params.CountryHandler,
		favoritesHandler: params.FavoritesHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)

	// Account routes
	api.PUT("/create-user", r.userHandler.Register)
	api.POST("/login", r.userHandler.Login)
	api.DELETE("/reset-users", r.userHandler.ResetUsers)

	// Country catalogue routes
	api.POST("/create-country", r.countryHandler.Create)
	api.DELETE("/delete-country/:name", r.countryHandler.Delete)
	api.GET("/get-all-countries-from-database", r.countryHandler.GetAll)
	api.GET("/get-country-from-database-by-name/:name", r.countryHandler.GetByName)
	api.GET("/country-population-leaderboard", r.countryHandler.Leaderboard)
	api.POST("/import-countries", r.countryHandler.Import)
	api.DELETE("/reset-countries", r.countryHandler.ResetCountries)

	// Routes that require an authenticated session
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.POST("/logout", r.userHandler.Logout)
		authed.POST("/change-password", r.userHandler.ChangePassword)

		authed.POST("/add-country-to-favorites", r.favoritesHandler.Add)
		authed.DELETE("/remove-country-from-favorites", r.favoritesHandler.Remove)
		authed.GET("/get-all-countries-from-favorites", r.favoritesHandler.List)
		authed.POST("/clear-favorites", r.favoritesHandler.Clear)
		authed.GET("/get-favorites-length-population", r.favoritesHandler.Stats)
		authed.GET("/compare-two-favorites", r.favoritesHandler.Compare)
	}
}
