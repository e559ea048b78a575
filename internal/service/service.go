// Package service contains the business logic.
//
// It sits between the handler and repository layers: existence checks
// that turn into 404s, partial-update merging, favorite linking, and
// password hashing all live here. Services depend on small store
// interfaces satisfied by the repository types.
package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/sqlerr"

	"github.com/jackc/pgx/v5"
)

// UserStore is the persistence contract the user service needs.
type UserStore interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
}

// PlanetStore is the persistence contract the planet service needs.
type PlanetStore interface {
	List(ctx context.Context) ([]entity.Planet, error)
	GetByID(ctx context.Context, id int64) (*entity.Planet, error)
	Create(ctx context.Context, p *entity.Planet) (*entity.Planet, error)
	Update(ctx context.Context, p *entity.Planet) error
	Delete(ctx context.Context, id int64) error
}

// PersonStore is the persistence contract the person service needs.
type PersonStore interface {
	List(ctx context.Context) ([]entity.Person, error)
	GetByID(ctx context.Context, id int64) (*entity.Person, error)
	Create(ctx context.Context, p *entity.Person) (*entity.Person, error)
	Update(ctx context.Context, p *entity.Person) error
	Delete(ctx context.Context, id int64) error
}

// FavoriteStore is the persistence contract the favorite service needs.
type FavoriteStore interface {
	ListByUser(ctx context.Context, userID int64) ([]entity.Favorite, error)
	Create(ctx context.Context, f *entity.Favorite) (*entity.Favorite, error)
	FindByUserAndPlanet(ctx context.Context, userID, planetID int64) (*entity.Favorite, error)
	FindByUserAndPerson(ctx context.Context, userID, peopleID int64) (*entity.Favorite, error)
	Delete(ctx context.Context, id int64) error
}

// orNotFound maps a missing-row error to a 404 with the given message
// and classifies everything else at the sqlerr boundary.
func orNotFound(err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError(message)
	}
	return sqlerr.HandleError(err)
}
