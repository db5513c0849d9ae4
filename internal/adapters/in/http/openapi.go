package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// swaggerDoc serves a pre-rendered document to the swagger UI.
type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var registerSwagger sync.Once

// registerDocs exposes doc as JSON and through the swagger UI.
func registerDocs(e *echo.Echo, doc *openapi3.T) error {
	rendered, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("render openapi document: %w", err)
	}

	// swag keeps a process-wide registry and panics on duplicate names.
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc(rendered))
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, rendered)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}
