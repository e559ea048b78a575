package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/starwars-api/internal/middleware"
	"github.com/deppfellow/starwars-api/internal/server"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 5 * time.Second

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Status reports service health. A failing database ping degrades the
// response to 503 so load balancers can rotate the instance out.
func (h *HealthHandler) Status() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		res := healthResponse{Status: "ok", Database: "up"}
		status := http.StatusOK

		if err := h.server.DB.Pool.Ping(ctx); err != nil {
			res = healthResponse{Status: "degraded", Database: "down"}
			status = http.StatusServiceUnavailable

			middleware.GetLogger(c).Error().Err(err).Msg("database ping failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckFailed", map[string]any{
					"component": "database",
				})
			}
		}

		return c.JSON(status, res)
	}
}
