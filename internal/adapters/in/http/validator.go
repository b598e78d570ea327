package http

import (
	"fmt"
	"net/http"

	"trading/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator returns middleware checking API requests against the
// embedded OpenAPI document. Requests to paths the document does not describe
// pass through untouched.
func NewRequestValidator() (echo.MiddlewareFunc, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	// paths in the document carry the full prefix
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				// not an API route, e.g. /health
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}
