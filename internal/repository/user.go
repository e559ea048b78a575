package repository

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	query := `SELECT id, email, password, is_active, username FROM users ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.Username); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID returns a user by primary key. Returns pgx.ErrNoRows when the
// user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT id, email, password, is_active, username FROM users WHERE id = $1`

	var u entity.User
	err := r.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Password, &u.IsActive, &u.Username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and fills in the generated id.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (email, password, is_active, username) VALUES ($1, $2, $3, $4) RETURNING id`

	if err := r.pool.QueryRow(ctx, query, u.Email, u.Password, u.IsActive, u.Username).Scan(&u.ID); err != nil {
		return nil, err
	}
	return u, nil
}
