package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/deppfellow/starwars-api/internal/server"

	"github.com/labstack/echo/v4"
)

// SitemapHandler serves the route map on the root path so the API is
// explorable without external docs.
type SitemapHandler struct {
	Handler
	routes []routeInfo
}

func NewSitemapHandler(s *server.Server) *SitemapHandler {
	return &SitemapHandler{Handler: NewHandler(s)}
}

type routeInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SetRoutes captures the registered routes. Called once during router
// setup, before the server accepts traffic.
func (h *SitemapHandler) SetRoutes(routes []*echo.Route) {
	infos := make([]routeInfo, 0, len(routes))
	for _, r := range routes {
		if r == nil || strings.HasPrefix(r.Name, "github.com/labstack/echo") {
			continue
		}
		infos = append(infos, routeInfo{Method: r.Method, Path: r.Path})
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Path != infos[j].Path {
			return infos[i].Path < infos[j].Path
		}
		return infos[i].Method < infos[j].Method
	})

	h.routes = infos
}

func (h *SitemapHandler) Serve() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, h.routes)
	}
}
