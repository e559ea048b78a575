package repository

import (
	"github.com/deppfellow/starwars-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users     *UserRepository
	Planets   *PlanetRepository
	People    *PersonRepository
	Favorites *FavoriteRepository
}

// NewRepositories constructs the repository container from the shared
// connection pool.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	return &Repositories{
		Users:     NewUserRepository(pool),
		Planets:   NewPlanetRepository(pool),
		People:    NewPersonRepository(pool),
		Favorites: NewFavoriteRepository(pool),
	}
}
