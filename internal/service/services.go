package service

import (
	"github.com/deppfellow/starwars-api/internal/repository"
)

// Services is a container for all service instances.
type Services struct {
	Users     *UserService
	Planets   *PlanetService
	People    *PersonService
	Favorites *FavoriteService
}

// NewServices constructs the service container on top of the
// repositories.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Users:     NewUserService(repos.Users),
		Planets:   NewPlanetService(repos.Planets),
		People:    NewPersonService(repos.People),
		Favorites: NewFavoriteService(repos.Favorites, repos.Users, repos.Planets, repos.People),
	}
}
