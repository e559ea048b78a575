package repository

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanetRepository struct {
	pool *pgxpool.Pool
}

func NewPlanetRepository(pool *pgxpool.Pool) *PlanetRepository {
	return &PlanetRepository{pool: pool}
}

// List returns all planets ordered by id.
func (r *PlanetRepository) List(ctx context.Context) ([]entity.Planet, error) {
	query := `SELECT id, name, climate, terrain FROM planets ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planets := []entity.Planet{}
	for rows.Next() {
		var p entity.Planet
		if err := rows.Scan(&p.ID, &p.Name, &p.Climate, &p.Terrain); err != nil {
			return nil, err
		}
		planets = append(planets, p)
	}
	return planets, rows.Err()
}

// GetByID returns a planet by primary key. Returns pgx.ErrNoRows when
// the planet does not exist.
func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*entity.Planet, error) {
	query := `SELECT id, name, climate, terrain FROM planets WHERE id = $1`

	var p entity.Planet
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Climate, &p.Terrain)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a planet and fills in the generated id.
func (r *PlanetRepository) Create(ctx context.Context, p *entity.Planet) (*entity.Planet, error) {
	query := `INSERT INTO planets (name, climate, terrain) VALUES ($1, $2, $3) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, p.Name, p.Climate, p.Terrain).Scan(&p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Update writes all columns of the planet row. Updating a row that was
// deleted concurrently is a no-op; the race is accepted.
func (r *PlanetRepository) Update(ctx context.Context, p *entity.Planet) error {
	query := `UPDATE planets SET name = $2, climate = $3, terrain = $4 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, p.ID, p.Name, p.Climate, p.Terrain)
	return err
}

// Delete removes a planet row. Deleting an already-deleted row is a
// no-op.
func (r *PlanetRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM planets WHERE id = $1`, id)
	return err
}
