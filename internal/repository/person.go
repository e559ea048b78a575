package repository

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

// List returns all people ordered by id.
func (r *PersonRepository) List(ctx context.Context) ([]entity.Person, error) {
	query := `SELECT id, name, birth_year, gender FROM people ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := []entity.Person{}
	for rows.Next() {
		var p entity.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.BirthYear, &p.Gender); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// GetByID returns a person by primary key. Returns pgx.ErrNoRows when
// the person does not exist.
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*entity.Person, error) {
	query := `SELECT id, name, birth_year, gender FROM people WHERE id = $1`

	var p entity.Person
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.BirthYear, &p.Gender)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a person and fills in the generated id.
func (r *PersonRepository) Create(ctx context.Context, p *entity.Person) (*entity.Person, error) {
	query := `INSERT INTO people (name, birth_year, gender) VALUES ($1, $2, $3) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, p.Name, p.BirthYear, p.Gender).Scan(&p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Update writes all columns of the person row. Updating a row that was
// deleted concurrently is a no-op; the race is accepted.
func (r *PersonRepository) Update(ctx context.Context, p *entity.Person) error {
	query := `UPDATE people SET name = $2, birth_year = $3, gender = $4 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, p.ID, p.Name, p.BirthYear, p.Gender)
	return err
}

// Delete removes a person row. Deleting an already-deleted row is a
// no-op.
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	return err
}
