package service

import (
	"context"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/sqlerr"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// List returns all users in their public shape. The password hash never
// leaves the service layer.
func (s *UserService) List(ctx context.Context) ([]entity.PublicUser, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	public := make([]entity.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}

// Create registers a user with a bcrypt-hashed password.
func (s *UserService) Create(ctx context.Context, email, username, password string, isActive bool) (*entity.PublicUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewInternalServerError("")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hash),
		IsActive: isActive,
		Username: username,
	}

	user, err = s.store.Create(ctx, user)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	public := user.Public()
	return &public, nil
}
