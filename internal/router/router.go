// Package router wires handlers and middleware onto an Echo instance.
// The route table mirrors the public API surface: users, planets,
// people, favorites, plus the health and sitemap system routes.
package router

import (
	"github.com/deppfellow/starwars-api/internal/handler"
	"github.com/deppfellow/starwars-api/internal/middleware"
	"github.com/deppfellow/starwars-api/internal/server"

	"github.com/labstack/echo/v4"
)

// New builds the Echo instance with the full middleware chain and route
// table registered.
func New(s *server.Server, handlers *handler.Handlers, middlewares *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: recovery outermost, then headers and CORS, then
	// request identity and tracing so the context enhancer can fold
	// trace metadata into the request logger.
	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.Secure())
	e.Use(middlewares.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(middlewares.Tracing.NewRelicMiddleware())
	e.Use(middlewares.Tracing.EnhanceTracing())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Global.RequestLogger())

	registerRoutes(e, handlers)

	handlers.Sitemap.SetRoutes(e.Routes())

	return e
}

func registerRoutes(e *echo.Echo, handlers *handler.Handlers) {
	e.GET("/", handlers.Sitemap.Serve())
	e.GET("/status", handlers.Health.Status())

	e.GET("/users", handlers.Users.List())
	e.POST("/users", handlers.Users.Create())
	e.GET("/users/favorites", handlers.Favorites.ListForUser())

	e.GET("/people", handlers.People.List())
	e.POST("/people", handlers.People.Create())
	e.GET("/people/:id", handlers.People.Get())
	e.PUT("/people/:id", handlers.People.Update())
	e.DELETE("/people/:id", handlers.People.Delete())

	e.GET("/planets", handlers.Planets.List())
	e.POST("/planets", handlers.Planets.Create())
	e.GET("/planets/:id", handlers.Planets.Get())
	e.PUT("/planets/:id", handlers.Planets.Update())
	e.DELETE("/planets/:id", handlers.Planets.Delete())

	e.POST("/favorite/planets/:planet_id", handlers.Favorites.AddPlanet())
	e.DELETE("/favorite/planet/:planet_id", handlers.Favorites.RemovePlanet())
	e.POST("/favorite/people/:people_id", handlers.Favorites.AddPerson())
	e.DELETE("/favorite/people/:people_id", handlers.Favorites.RemovePerson())
}
