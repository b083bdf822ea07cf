package http

import (
	"errors"
	"fmt"

	"parcelhub/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// ValidateRequests checks every request against the OpenAPI contract.
// Requests for routes the contract does not describe pass through so that
// echo answers them with 404 or 405. Authentication is left to Authenticate.
func ValidateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return contractViolation(err)
			}
			return next(c)
		}
	}, nil
}

func contractViolation(err error) error {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.Parameter != nil:
			return errs.NewValueIsInvalidErrorWithCause(reqErr.Parameter.Name, reqErr.Err)
		case reqErr.RequestBody != nil:
			return errs.NewValueIsInvalidErrorWithCause("body", reqErr.Err)
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("request", err)
}
