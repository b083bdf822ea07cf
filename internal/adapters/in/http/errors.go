package http

import (
	"errors"
	"log/slog"
	"net/http"

	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler returns the echo error handler that maps error kinds to
// status codes and writes them in the response envelope.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, failure(message))
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var dependencyErr *errs.DependencyError
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicate):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, err.Error()
	case errors.As(err, &dependencyErr):
		if dependencyErr.Timeout {
			return http.StatusGatewayTimeout, dependencyErr.Service + " did not respond in time"
		}
		return http.StatusBadGateway, dependencyErr.Service + " request failed"
	case errors.As(err, &httpErr):
		if msg, isString := httpErr.Message.(string); isString {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
