package http

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

type routeEntry struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// RegisterSitemap serves GET / with every route registered on e, resolved
// when the request arrives so routes added later are included.
func RegisterSitemap(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"routes": listRoutes(e)})
	})
}

func listRoutes(e *echo.Echo) []routeEntry {
	seen := make(map[routeEntry]struct{})
	routes := make([]routeEntry, 0, len(e.Routes()))
	for _, r := range e.Routes() {
		if r.Method == echo.RouteNotFound {
			continue
		}
		entry := routeEntry{Method: r.Method, Path: r.Path}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		routes = append(routes, entry)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}
