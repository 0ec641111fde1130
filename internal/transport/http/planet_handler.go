package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/service"
)

type PlanetHandler struct {
	planets *service.PlanetService
}

type planetCreateRequest struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Population  *int64  `json:"population" validate:"required"`
}

type planetUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Population  *int64  `json:"population"`
}

func RegisterPlanets(e *echo.Echo, planets *service.PlanetService) {
	handler := &PlanetHandler{planets: planets}

	g := e.Group("/planet")
	g.GET("", handler.listPlanets)
	g.GET("/:id", handler.getPlanet)
	g.POST("", handler.createPlanet)
	g.PUT("/:id", handler.updatePlanet)
}

func (h *PlanetHandler) listPlanets(c echo.Context) error {
	planets, err := h.planets.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, planets)
}

func (h *PlanetHandler) getPlanet(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	planet, err := h.planets.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, planet)
}

func (h *PlanetHandler) createPlanet(c echo.Context) error {
	var req planetCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	planet, err := h.planets.Create(c.Request().Context(), domain.PlanetFields{
		Name:        req.Name,
		Description: req.Description,
		Population:  req.Population,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, planet)
}

func (h *PlanetHandler) updatePlanet(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	// a missing row wins over a bad body
	if _, err := h.planets.Get(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	var req planetUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	planet, err := h.planets.Update(c.Request().Context(), id, domain.PlanetFields{
		Name:        req.Name,
		Description: req.Description,
		Population:  req.Population,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, planet)
}
