package handler

import (
	"net/http"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"
	"github.com/deppfellow/starwars-api/internal/validation"

	"github.com/labstack/echo/v4"
)

type PlanetHandler struct {
	Handler
	planets *service.PlanetService
}

func NewPlanetHandler(s *server.Server, planets *service.PlanetService) *PlanetHandler {
	return &PlanetHandler{Handler: NewHandler(s), planets: planets}
}

type listPlanetsRequest struct{}

func (r *listPlanetsRequest) Validate() error { return nil }

type getPlanetRequest struct {
	ID int64 `param:"id"`
}

func (r *getPlanetRequest) Validate() error { return nil }

type createPlanetRequest struct {
	Name    string `json:"name" validate:"required"`
	Climate string `json:"climate" validate:"required"`
	Terrain string `json:"terrain" validate:"required"`
}

func (r *createPlanetRequest) Validate() error { return validate.Struct(r) }

type updatePlanetRequest struct {
	ID      int64   `param:"id" json:"-"`
	Name    *string `json:"name"`
	Climate *string `json:"climate"`
	Terrain *string `json:"terrain"`
}

// Name may be omitted but not cleared.
func (r *updatePlanetRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return validation.CustomValidationErrors{
			{Field: "name", Message: "must not be empty"},
		}
	}
	return nil
}

type deletePlanetRequest struct {
	ID int64 `param:"id"`
}

func (r *deletePlanetRequest) Validate() error { return nil }

func (h *PlanetHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *listPlanetsRequest) ([]entity.Planet, error) {
		return h.planets.List(c.Request().Context())
	}, http.StatusOK)
}

func (h *PlanetHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *getPlanetRequest) (*entity.Planet, error) {
		return h.planets.Get(c.Request().Context(), req.ID)
	}, http.StatusOK)
}

func (h *PlanetHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *createPlanetRequest) (*entity.Planet, error) {
		return h.planets.Create(c.Request().Context(), req.Name, req.Climate, req.Terrain)
	}, http.StatusCreated)
}

func (h *PlanetHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *updatePlanetRequest) (*entity.Planet, error) {
		return h.planets.Update(c.Request().Context(), req.ID, req.Name, req.Climate, req.Terrain)
	}, http.StatusOK)
}

func (h *PlanetHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *deletePlanetRequest) (*messageResponse, error) {
		if err := h.planets.Delete(c.Request().Context(), req.ID); err != nil {
			return nil, err
		}
		return &messageResponse{Message: "Planet deleted"}, nil
	}, http.StatusOK)
}
