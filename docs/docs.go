// Package docs embeds the Swagger 2.0 description of the HTTP API.
package docs

import _ "embed"

// SwaggerYAML is converted to JSON and served at GET /swagger/doc.json.
//
//go:embed swagger.yaml
var SwaggerYAML []byte
