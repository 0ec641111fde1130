package http

import (
	"net/http"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/njprem/StarWars_API_BackEnd/internal/logging"
	"github.com/njprem/StarWars_API_BackEnd/internal/util"
)

// RegisterSwagger serves the given YAML document as JSON at /swagger/doc.json
// and the Swagger UI under /swagger.
func RegisterSwagger(e *echo.Echo, specYAML []byte) {
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		jsonSpec, err := yaml.YAMLToJSON(specYAML)
		if err != nil {
			logging.Error().Err(err).Msg("convert swagger spec")
			return util.NewAPIError(http.StatusInternalServerError, "unable to parse swagger spec")
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
