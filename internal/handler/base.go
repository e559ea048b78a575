package handler

import (
	"time"

	"github.com/deppfellow/starwars-api/internal/middleware"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handler carries the dependencies shared by every HTTP handler.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// validatablePtr constrains PReq to a pointer to Req that validates
// itself, so Handle can allocate a fresh payload per request instead of
// sharing one across goroutines.
type validatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps an endpoint function into an echo.HandlerFunc. It binds
// and validates the request payload, runs the endpoint, and writes the
// result as JSON with the given status. Errors propagate to the global
// error handler untouched.
func Handle[Req any, PReq validatablePtr[Req], Res any](h Handler, endpoint func(c echo.Context, req PReq) (Res, error), status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		req := PReq(new(Req))
		if err := validation.BindAndValidate(c, req); err != nil {
			return err
		}

		res, err := endpoint(c, req)
		if err != nil {
			return err
		}

		middleware.GetLogger(c).Debug().
			Str("route", c.Path()).
			Dur("duration", time.Since(start)).
			Msg("request handled")

		return c.JSON(status, res)
	}
}
