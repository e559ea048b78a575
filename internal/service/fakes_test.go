package service

import (
	"context"
	"sort"

	"github.com/deppfellow/starwars-api/internal/entity"

	"github.com/jackc/pgx/v5"
)

// In-memory stores backing the service tests. Missing rows surface as
// pgx.ErrNoRows, matching the repository contract.

type fakeUserStore struct {
	users  map[int64]entity.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]entity.User{}}
}

func (s *fakeUserStore) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (s *fakeUserStore) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	s.nextID++
	u.ID = s.nextID
	s.users[u.ID] = *u
	return u, nil
}

type fakePlanetStore struct {
	planets map[int64]entity.Planet
	nextID  int64
}

func newFakePlanetStore() *fakePlanetStore {
	return &fakePlanetStore{planets: map[int64]entity.Planet{}}
}

func (s *fakePlanetStore) List(_ context.Context) ([]entity.Planet, error) {
	out := make([]entity.Planet, 0, len(s.planets))
	for _, p := range s.planets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakePlanetStore) GetByID(_ context.Context, id int64) (*entity.Planet, error) {
	p, ok := s.planets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (s *fakePlanetStore) Create(_ context.Context, p *entity.Planet) (*entity.Planet, error) {
	s.nextID++
	p.ID = s.nextID
	s.planets[p.ID] = *p
	return p, nil
}

func (s *fakePlanetStore) Update(_ context.Context, p *entity.Planet) error {
	if _, ok := s.planets[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.planets[p.ID] = *p
	return nil
}

func (s *fakePlanetStore) Delete(_ context.Context, id int64) error {
	delete(s.planets, id)
	return nil
}

type fakePersonStore struct {
	people map[int64]entity.Person
	nextID int64
}

func newFakePersonStore() *fakePersonStore {
	return &fakePersonStore{people: map[int64]entity.Person{}}
}

func (s *fakePersonStore) List(_ context.Context) ([]entity.Person, error) {
	out := make([]entity.Person, 0, len(s.people))
	for _, p := range s.people {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakePersonStore) GetByID(_ context.Context, id int64) (*entity.Person, error) {
	p, ok := s.people[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (s *fakePersonStore) Create(_ context.Context, p *entity.Person) (*entity.Person, error) {
	s.nextID++
	p.ID = s.nextID
	s.people[p.ID] = *p
	return p, nil
}

func (s *fakePersonStore) Update(_ context.Context, p *entity.Person) error {
	if _, ok := s.people[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	s.people[p.ID] = *p
	return nil
}

func (s *fakePersonStore) Delete(_ context.Context, id int64) error {
	delete(s.people, id)
	return nil
}

type fakeFavoriteStore struct {
	favorites []entity.Favorite
	nextID    int64
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{}
}

func (s *fakeFavoriteStore) ListByUser(_ context.Context, userID int64) ([]entity.Favorite, error) {
	out := []entity.Favorite{}
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *fakeFavoriteStore) Create(_ context.Context, f *entity.Favorite) (*entity.Favorite, error) {
	s.nextID++
	f.ID = s.nextID
	s.favorites = append(s.favorites, *f)
	return f, nil
}

func (s *fakeFavoriteStore) FindByUserAndPlanet(_ context.Context, userID, planetID int64) (*entity.Favorite, error) {
	for _, f := range s.favorites {
		if f.UserID == userID && f.PlanetID != nil && *f.PlanetID == planetID {
			found := f
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeFavoriteStore) FindByUserAndPerson(_ context.Context, userID, peopleID int64) (*entity.Favorite, error) {
	for _, f := range s.favorites {
		if f.UserID == userID && f.PeopleID != nil && *f.PeopleID == peopleID {
			found := f
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeFavoriteStore) Delete(_ context.Context, id int64) error {
	for i, f := range s.favorites {
		if f.ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}
