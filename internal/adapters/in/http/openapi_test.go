package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parcelhub/api"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runContract(t *testing.T, req *http.Request) (bool, error) {
	t.Helper()
	doc, err := api.Load(context.Background())
	require.NoError(t, err)
	validate, err := ValidateRequests(doc)
	require.NoError(t, err)

	reached := false
	c := echo.New().NewContext(req, httptest.NewRecorder())
	err = validate(func(c echo.Context) error {
		reached = true
		// The body must still be readable after validation.
		_, readErr := io.ReadAll(c.Request().Body)
		return readErr
	})(c)
	return reached, err
}

func TestValidateRequests(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch,
			"/api/v1/package/0b7c5a3e-3f5e-4a44-9d55-8a4f8d2b6c11/status",
			strings.NewReader(`{"status":"Delivered"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		reached, err := runContract(t, req)
		require.NoError(t, err)
		assert.True(t, reached)
	})

	t.Run("enum violation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch,
			"/api/v1/package/0b7c5a3e-3f5e-4a44-9d55-8a4f8d2b6c11/status",
			strings.NewReader(`{"status":"Lost"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		reached, err := runContract(t, req)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, reached)
	})

	t.Run("wrong body type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/package/ratings",
			strings.NewReader(`{"rating":"five"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		_, err := runContract(t, req)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "body")
	})

	t.Run("query parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/package?limit=abc", nil)

		_, err := runContract(t, req)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "limit")
	})

	t.Run("static path wins over id", func(t *testing.T) {
		reached, err := runContract(t, httptest.NewRequest(http.MethodGet, "/api/v1/package/site-stats", nil))
		require.NoError(t, err)
		assert.True(t, reached)
	})

	t.Run("undocumented path passes through", func(t *testing.T) {
		reached, err := runContract(t, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		require.NoError(t, err)
		assert.True(t, reached)
	})
}
