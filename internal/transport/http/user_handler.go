package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/StarWars_API_BackEnd/internal/service"
)

type UserHandler struct {
	users     *service.UserService
	favorites *service.FavoriteService
}

func RegisterUsers(e *echo.Echo, users *service.UserService, favorites *service.FavoriteService) {
	handler := &UserHandler{
		users:     users,
		favorites: favorites,
	}

	g := e.Group("/user")
	g.GET("", handler.listUsers)
	g.GET("/:id/favorites", handler.listFavorites)
}

func (h *UserHandler) listUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) listFavorites(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	items, err := h.favorites.ListByUser(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, items)
}
