package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/StarWars_API_BackEnd/internal/domain"
	"github.com/njprem/StarWars_API_BackEnd/internal/service"
)

type PeopleHandler struct {
	people *service.PeopleService
}

type peopleCreateRequest struct {
	Name      *string `json:"name" validate:"required"`
	HairColor *string `json:"hair_color" validate:"required"`
	Gender    *string `json:"gender" validate:"required"`
}

type peopleUpdateRequest struct {
	Name      *string `json:"name"`
	HairColor *string `json:"hair_color"`
	Gender    *string `json:"gender"`
}

func RegisterPeople(e *echo.Echo, people *service.PeopleService) {
	handler := &PeopleHandler{people: people}

	g := e.Group("/people")
	g.GET("", handler.listPeople)
	g.GET("/:id", handler.getPeople)
	g.POST("", handler.createPeople)
	g.PUT("/:id", handler.updatePeople)
}

func (h *PeopleHandler) listPeople(c echo.Context) error {
	items, err := h.people.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *PeopleHandler) getPeople(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	person, err := h.people.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, person)
}

func (h *PeopleHandler) createPeople(c echo.Context) error {
	var req peopleCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	person, err := h.people.Create(c.Request().Context(), domain.PeopleFields{
		Name:      req.Name,
		HairColor: req.HairColor,
		Gender:    req.Gender,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, person)
}

func (h *PeopleHandler) updatePeople(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.people.Get(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	var req peopleUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	person, err := h.people.Update(c.Request().Context(), id, domain.PeopleFields{
		Name:      req.Name,
		HairColor: req.HairColor,
		Gender:    req.Gender,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, person)
}
