package repository

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// ListByUser returns all favorites of one user, planet- and
// person-typed alike, ordered by id.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Favorite, error) {
	query := `SELECT id, user_id, planet_id, people_id FROM favorites WHERE user_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []entity.Favorite{}
	for rows.Next() {
		var f entity.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// Create inserts a favorite and fills in the generated id. Exactly one
// of PlanetID/PeopleID must be set; the check constraint enforces it.
func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) (*entity.Favorite, error) {
	query := `INSERT INTO favorites (user_id, planet_id, people_id) VALUES ($1, $2, $3) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, f.UserID, f.PlanetID, f.PeopleID).Scan(&f.ID); err != nil {
		return nil, err
	}
	return f, nil
}

// FindByUserAndPlanet returns the oldest favorite matching
// (user_id, planet_id), or pgx.ErrNoRows.
func (r *FavoriteRepository) FindByUserAndPlanet(ctx context.Context, userID, planetID int64) (*entity.Favorite, error) {
	query := `SELECT id, user_id, planet_id, people_id FROM favorites WHERE user_id = $1 AND planet_id = $2 ORDER BY id LIMIT 1`

	var f entity.Favorite
	err := r.pool.QueryRow(ctx, query, userID, planetID).Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindByUserAndPerson returns the oldest favorite matching
// (user_id, people_id), or pgx.ErrNoRows.
func (r *FavoriteRepository) FindByUserAndPerson(ctx context.Context, userID, peopleID int64) (*entity.Favorite, error) {
	query := `SELECT id, user_id, planet_id, people_id FROM favorites WHERE user_id = $1 AND people_id = $2 ORDER BY id LIMIT 1`

	var f entity.Favorite
	err := r.pool.QueryRow(ctx, query, userID, peopleID).Scan(&f.ID, &f.UserID, &f.PlanetID, &f.PeopleID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete removes a favorite row by primary key. Deleting an
// already-deleted row is a no-op.
func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	return err
}
