package service

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
)

type PersonService struct {
	store PersonStore
}

func NewPersonService(store PersonStore) *PersonService {
	return &PersonService{store: store}
}

// List returns all people.
func (s *PersonService) List(ctx context.Context) ([]entity.Person, error) {
	people, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return people, nil
}

// Get returns one person or a 404.
func (s *PersonService) Get(ctx context.Context, id int64) (*entity.Person, error) {
	person, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "person not found")
	}
	return person, nil
}

// Create inserts a person. Uniqueness of the name is enforced by the
// store; a violation surfaces through sqlerr.
func (s *PersonService) Create(ctx context.Context, name, birthYear, gender string) (*entity.Person, error) {
	person := &entity.Person{
		Name:      name,
		BirthYear: &birthYear,
		Gender:    &gender,
	}

	person, err := s.store.Create(ctx, person)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return person, nil
}

// Update merges the supplied fields into the stored person. Nil fields
// are left unchanged; the row must exist.
func (s *PersonService) Update(ctx context.Context, id int64, name, birthYear, gender *string) (*entity.Person, error) {
	person, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, orNotFound(err, "person not found")
	}

	if name != nil {
		person.Name = *name
	}
	if birthYear != nil {
		person.BirthYear = birthYear
	}
	if gender != nil {
		person.Gender = gender
	}

	if err := s.store.Update(ctx, person); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return person, nil
}

// Delete removes a person. The existence check happens first so a
// missing row is a 404; a delete racing another delete stays silent.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return orNotFound(err, "person not found")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return sqlerr.HandleError(err)
	}
	return nil
}
