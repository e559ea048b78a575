package handler

import (
	"net/http"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

type listUsersRequest struct{}

func (r *listUsersRequest) Validate() error { return nil }

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	IsActive *bool  `json:"is_active"`
}

func (r *createUserRequest) Validate() error { return validate.Struct(r) }

func (h *UserHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *listUsersRequest) ([]entity.PublicUser, error) {
		return h.users.List(c.Request().Context())
	}, http.StatusOK)
}

func (h *UserHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *createUserRequest) (*entity.PublicUser, error) {
		// Accounts are active unless the payload opts out.
		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}
		return h.users.Create(c.Request().Context(), req.Email, req.Username, req.Password, isActive)
	}, http.StatusCreated)
}
