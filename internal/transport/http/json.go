package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// goJSONSerializer swaps Echo's encoding/json codec for goccy/go-json.
type goJSONSerializer struct{}

func (goJSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (goJSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	err = json.Unmarshal(body, i)
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &typeErr):
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type)).SetInternal(err)
	case errors.As(err, &syntaxErr):
		// goccy stops at the '.' of a fraction sent for an integer field and
		// reports a syntax error even though the document is well formed
		if json.Valid(body) {
			if field, typ, ok := nonIntegerField(body, i); ok {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be of type %s", field, typ)).SetInternal(err)
			}
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body").SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
}

// nonIntegerField finds the first top-level integer field of target whose
// value in body is a number that does not parse as an integer.
func nonIntegerField(body []byte, target interface{}) (string, string, bool) {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", "", false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return "", "", false
	}

	for idx := 0; idx < t.NumField(); idx++ {
		f := t.Field(idx)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		switch ft.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			continue
		}
		num, ok := raw[name].(json.Number)
		if !ok {
			continue
		}
		if _, err := strconv.ParseInt(num.String(), 10, 64); err != nil {
			return name, ft.String(), true
		}
	}
	return "", "", false
}
