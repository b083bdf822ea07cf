package http

import (
	"parcelhub/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// requireOperation rejects callers whose role the access policy never allows
// to perform op, before any binding or storage work happens. Ownership is
// still checked by the handlers.
func requireOperation(policy services.AccessPolicy, op services.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.Authorize(actorFrom(c), op); err != nil {
				return err
			}
			return next(c)
		}
	}
}
