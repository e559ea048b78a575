package handler

import (
	"net/http"

	"github.com/deppfellow/starwars-api/internal/entity"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"

	"github.com/labstack/echo/v4"
)

type FavoriteHandler struct {
	Handler
	favorites *service.FavoriteService
}

func NewFavoriteHandler(s *server.Server, favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Handler: NewHandler(s), favorites: favorites}
}

// The favorite endpoints identify the acting user with a user_id query
// parameter. A missing or unknown user resolves to a 404 in the
// service, never a validation error.
type listFavoritesRequest struct {
	UserID int64 `query:"user_id"`
}

func (r *listFavoritesRequest) Validate() error { return nil }

type favoritePlanetRequest struct {
	PlanetID int64 `param:"planet_id"`
	UserID   int64 `query:"user_id"`
}

func (r *favoritePlanetRequest) Validate() error { return nil }

type favoritePersonRequest struct {
	PeopleID int64 `param:"people_id"`
	UserID   int64 `query:"user_id"`
}

func (r *favoritePersonRequest) Validate() error { return nil }

func (h *FavoriteHandler) ListForUser() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *listFavoritesRequest) ([]entity.Favorite, error) {
		return h.favorites.ListForUser(c.Request().Context(), req.UserID)
	}, http.StatusOK)
}

func (h *FavoriteHandler) AddPlanet() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *favoritePlanetRequest) (*entity.Favorite, error) {
		return h.favorites.AddPlanet(c.Request().Context(), req.UserID, req.PlanetID)
	}, http.StatusCreated)
}

func (h *FavoriteHandler) RemovePlanet() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *favoritePlanetRequest) (*messageResponse, error) {
		if err := h.favorites.RemovePlanet(c.Request().Context(), req.UserID, req.PlanetID); err != nil {
			return nil, err
		}
		return &messageResponse{Message: "Favorite deleted"}, nil
	}, http.StatusOK)
}

func (h *FavoriteHandler) AddPerson() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *favoritePersonRequest) (*entity.Favorite, error) {
		return h.favorites.AddPerson(c.Request().Context(), req.UserID, req.PeopleID)
	}, http.StatusCreated)
}

func (h *FavoriteHandler) RemovePerson() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *favoritePersonRequest) (*messageResponse, error) {
		if err := h.favorites.RemovePerson(c.Request().Context(), req.UserID, req.PeopleID); err != nil {
			return nil, err
		}
		return &messageResponse{Message: "Favorite deleted"}, nil
	}, http.StatusOK)
}
