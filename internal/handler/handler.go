// Package handler is the HTTP layer: it parses and validates requests,
// calls the service layer, and writes JSON responses. All endpoint
// functions run through the shared Handle pipeline in base.go.
package handler

import (
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"

	"github.com/go-playground/validator/v10"
)

// validate runs the struct-tag rules on request payloads.
var validate = validator.New()

// messageResponse is the body of endpoints that confirm an action,
// e.g. {"message": "Planet deleted"}.
type messageResponse struct {
	Message string `json:"message"`
}

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Users     *UserHandler
	Planets   *PlanetHandler
	People    *PersonHandler
	Favorites *FavoriteHandler
	Health    *HealthHandler
	Sitemap   *SitemapHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Users:     NewUserHandler(s, services.Users),
		Planets:   NewPlanetHandler(s, services.Planets),
		People:    NewPersonHandler(s, services.People),
		Favorites: NewFavoriteHandler(s, services.Favorites),
		Health:    NewHealthHandler(s),
		Sitemap:   NewSitemapHandler(s),
	}
}
