package http

import (
	"encoding/json"
	"sync"

	"trading/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

// openAPIDoc serves the embedded OpenAPI document to the swagger UI.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	doc, err := json.Marshal(swagger)
	if err != nil {
		return "{}"
	}
	return string(doc)
}

// RegisterSwagger mounts the swagger UI under /swagger/.
func RegisterSwagger(e *echo.Echo) {
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
