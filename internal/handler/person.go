package handler

import (
	"net/http"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"
	"github.com/deppfellow/starwars-api/internal/validation"

	"github.com/labstack/echo/v4"
)

type PersonHandler struct {
	Handler
	people *service.PersonService
}

func NewPersonHandler(s *server.Server, people *service.PersonService) *PersonHandler {
	return &PersonHandler{Handler: NewHandler(s), people: people}
}

type listPeopleRequest struct{}

func (r *listPeopleRequest) Validate() error { return nil }

type getPersonRequest struct {
	ID int64 `param:"id"`
}

func (r *getPersonRequest) Validate() error { return nil }

type createPersonRequest struct {
	Name      string `json:"name" validate:"required"`
	BirthYear string `json:"birth_year" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
}

func (r *createPersonRequest) Validate() error { return validate.Struct(r) }

type updatePersonRequest struct {
	ID        int64   `param:"id" json:"-"`
	Name      *string `json:"name"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}

// Name may be omitted but not cleared.
func (r *updatePersonRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return validation.CustomValidationErrors{
			{Field: "name", Message: "must not be empty"},
		}
	}
	return nil
}

type deletePersonRequest struct {
	ID int64 `param:"id"`
}

func (r *deletePersonRequest) Validate() error { return nil }

func (h *PersonHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *listPeopleRequest) ([]entity.Person, error) {
		return h.people.List(c.Request().Context())
	}, http.StatusOK)
}

func (h *PersonHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *getPersonRequest) (*entity.Person, error) {
		return h.people.Get(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

func (h *PersonHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *createPersonRequest) (*entity.Person, error) {
		return h.people.Create(c.Request().Context(), req.Name, req.BirthYear, req.Gender)
	}, http.StatusCreated)
}

func (h *PersonHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *updatePersonRequest) (*entity.Person, error) {
		return h.people.Update(c.Request().Context(), req.ID, req.Name, req.BirthYear, req.Gender)
	}, http.StatusOK)
}

func (h *PersonHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *deletePersonRequest) (*messageResponse, error) {
		if err := h.people.Delete(c.Request().Context(), req.ID); err != nil {
			return nil, err
		}
		return &messageResponse{Message: "Person deleted"}, nil
	}, http.StatusOK)
}
