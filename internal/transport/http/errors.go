package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
	"github.com/njprem/StarWars_API_BackEnd/internal/service"
	"github.com/njprem/StarWars_API_BackEnd/internal/util"
)

// errorHandler renders every error as {"message", "status_code"}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		apiErr  *util.APIError
		httpErr *echo.HTTPError
		verrs   validator.ValidationErrors
	)

	body := util.APIError{StatusCode: http.StatusInternalServerError, Message: "internal server error"}
	switch {
	case errors.As(err, &apiErr):
		body = *apiErr
	case errors.As(err, &verrs):
		body = util.APIError{StatusCode: http.StatusBadRequest, Message: validationMessage(verrs)}
	case errors.As(err, &httpErr):
		body.StatusCode = httpErr.Code
		body.Message = fmt.Sprint(httpErr.Message)
	default:
		logging.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("unhandled request error")
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(body.StatusCode)
	} else {
		writeErr = c.JSON(body.StatusCode, body)
	}
	if writeErr != nil {
		logging.Error().Err(writeErr).Msg("write error response")
	}
}

// serviceError translates service sentinels into API errors. Unknown errors
// pass through and end up as 500s.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return util.NewAPIError(http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrPlanetNotFound):
		return util.NewAPIError(http.StatusNotFound, "Planet not found")
	case errors.Is(err, service.ErrPeopleNotFound):
		return util.NewAPIError(http.StatusNotFound, "People not found")
	case errors.Is(err, service.ErrFavoriteNotFound):
		return util.NewAPIError(http.StatusNotFound, "No favorite found")
	case errors.Is(err, service.ErrUserExists):
		return util.NewAPIError(http.StatusConflict, "User already exists")
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidFavorite):
		return util.NewAPIError(http.StatusBadRequest, strings.ReplaceAll(err.Error(), "\n", ": "))
	default:
		return err
	}
}

// parseIDParam reads an integer path parameter. Anything that is not a
// positive integer does not match the route, hence 404.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
