package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/StarWars_API_BackEnd/internal/service"
	"github.com/njprem/StarWars_API_BackEnd/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

type favoritePlanetRequest struct {
	UserID   *int64 `json:"user_id" validate:"required,gt=0"`
	PlanetID *int64 `json:"planet_id" validate:"required,gt=0"`
}

type favoritePeopleRequest struct {
	UserID   *int64 `json:"user_id" validate:"required,gt=0"`
	PeopleID *int64 `json:"people_id" validate:"required,gt=0"`
}

func RegisterFavorites(e *echo.Echo, favorites *service.FavoriteService) {
	handler := &FavoriteHandler{favorites: favorites}

	g := e.Group("/favorite/user")
	g.POST("/planet", handler.addPlanet)
	g.POST("/people", handler.addPeople)
	g.DELETE("/people", handler.removePeople)
	g.DELETE("/:user_id/planet/:planet_id", handler.removePlanet)
}

func (h *FavoriteHandler) addPlanet(c echo.Context) error {
	var req favoritePlanetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.favorites.AddPlanet(c.Request().Context(), *req.UserID, *req.PlanetID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, util.Message("Your fav Planet has been added"))
}

func (h *FavoriteHandler) addPeople(c echo.Context) error {
	var req favoritePeopleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.favorites.AddPeople(c.Request().Context(), *req.UserID, *req.PeopleID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, util.Message("Your fav Person has been added"))
}

// removePeople takes its pair from the request body, unlike the planet route.
func (h *FavoriteHandler) removePeople(c echo.Context) error {
	var req favoritePeopleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.favorites.RemovePeople(c.Request().Context(), *req.UserID, *req.PeopleID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, util.Message("Your fav PERSON has been DELETED"))
}

func (h *FavoriteHandler) removePlanet(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return err
	}
	planetID, err := parseIDParam(c, "planet_id")
	if err != nil {
		return err
	}
	if err := h.favorites.RemovePlanet(c.Request().Context(), userID, planetID); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, util.Message("Your fav PLANET has been DELETED"))
}
