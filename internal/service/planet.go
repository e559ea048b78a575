package service

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
)

type PlanetService struct {
	store PlanetStore
}

func NewPlanetService(store PlanetStore) *PlanetService {
	return &PlanetService{store: store}
}

// List returns all planets.
func (s *PlanetService) List(ctx context.Context) ([]entity.Planet, error) {
	planets, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return planets, nil
}

// Get returns one planet or a 404.
func (s *PlanetService) Get(ctx context.Context, id int64) (*entity.Planet, error) {
	planet, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "planet not found")
	}
	return planet, nil
}

// Create inserts a planet. Uniqueness of the name is enforced by the
// store; a violation surfaces through sqlerr.
func (s *PlanetService) Create(ctx context.Context, name, climate, terrain string) (*entity.Planet, error) {
	planet := &entity.Planet{
		Name:    name,
		Climate: &climate,
		Terrain: &terrain,
	}

	planet, err := s.store.Create(ctx, planet)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return planet, nil
}

// Update merges the supplied fields into the stored planet. Nil fields
// are left unchanged; the row must exist.
func (s *PlanetService) Update(ctx context.Context, id int64, name, climate, terrain *string) (*entity.Planet, error) {
	planet, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "planet not found")
	}

	if name != nil {
		planet.Name = *name
	}
	if climate != nil {
		planet.Climate = climate
	}
	if terrain != nil {
		planet.Terrain = terrain
	}

	if err := s.store.Update(ctx, planet); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return planet, nil
}

// Delete removes a planet. The existence check happens first so a
// missing row is a 404; a delete racing another delete stays silent.
func (s *PlanetService) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return orNotFound(err, "planet not found")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return sqlerr.HandleError(err)
	}
	return nil
}
