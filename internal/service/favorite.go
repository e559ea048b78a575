package service

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
)

type FavoriteService struct {
	store   FavoriteStore
	users   UserStore
	planets PlanetStore
	people  PersonStore
}

func NewFavoriteService(store FavoriteStore, users UserStore, planets PlanetStore, people PersonStore) *FavoriteService {
	return &FavoriteService{
		store:   store,
		users:   users,
		planets: planets,
		people:  people,
	}
}

// ListForUser returns every favorite of the user, planet- and
// person-typed alike. The user must exist.
func (s *FavoriteService) ListForUser(ctx context.Context, userID int64) ([]entity.Favorite, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, orNotFound(err, "user not found")
	}

	favorites, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return favorites, nil
}

// AddPlanet links a planet to the user's favorites. Both rows must
// exist. Duplicate favorites are allowed; every call creates a new row.
func (s *FavoriteService) AddPlanet(ctx context.Context, userID, planetID int64) (*entity.Favorite, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, orNotFound(err, "user or planet not found")
	}
	if _, err := s.planets.GetByID(ctx, planetID); err != nil {
		return nil, orNotFound(err, "user or planet not found")
	}

	favorite := &entity.Favorite{
		UserID:   userID,
		PlanetID: &planetID,
	}

	favorite, err := s.store.Create(ctx, favorite)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return favorite, nil
}

// RemovePlanet deletes the oldest favorite matching
// (user_id, planet_id). A second identical call is a 404, not an error.
func (s *FavoriteService) RemovePlanet(ctx context.Context, userID, planetID int64) error {
	favorite, err := s.store.FindByUserAndPlanet(ctx, userID, planetID)
	if err != nil {
		return orNotFound(err, "favorite not found")
	}

	if err := s.store.Delete(ctx, favorite.ID); err != nil {
		return sqlerr.HandleError(err)
	}
	return nil
}

// AddPerson links a person to the user's favorites. Both rows must
// exist. Duplicate favorites are allowed; every call creates a new row.
func (s *FavoriteService) AddPerson(ctx context.Context, userID, peopleID int64) (*entity.Favorite, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, orNotFound(err, "user or person not found")
	}
	if _, err := s.people.GetByID(ctx, peopleID); err != nil {
		return nil, orNotFound(err, "user or person not found")
	}

	favorite := &entity.Favorite{
		UserID:   userID,
		PeopleID: &peopleID,
	}

	favorite, err := s.store.Create(ctx, favorite)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return favorite, nil
}

// RemovePerson deletes the oldest favorite matching
// (user_id, people_id). A second identical call is a 404, not an error.
func (s *FavoriteService) RemovePerson(ctx context.Context, userID, peopleID int64) error {
	favorite, err := s.store.FindByUserAndPerson(ctx, userID, peopleID)
	if err != nil {
		return orNotFound(err, "favorite not found")
	}

	if err := s.store.Delete(ctx, favorite.ID); err != nil {
		return sqlerr.HandleError(err)
	}
	return nil
}
