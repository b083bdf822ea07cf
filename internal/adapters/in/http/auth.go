package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorContextKey = "actor"
	tokenCookieName = "token"
)

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")

// Authenticate verifies the HS256 token issued by the identity service and
// stores the caller as a kernel.Actor on the context. The token is taken from
// the Authorization header, falling back to the token cookie.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request())
			if raw == "" {
				return errUnauthorized
			}

			actor, err := parseActor(raw, secret)
			if err != nil {
				return errUnauthorized.WithInternal(err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie(tokenCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func parseActor(raw string, secret []byte) (kernel.Actor, error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, err
	}

	claims, isMap := token.Claims.(jwt.MapClaims)
	if !isMap {
		return kernel.Actor{}, errors.New("unexpected claims type")
	}

	subject, _ := claims["_id"].(string)
	if subject == "" {
		subject, _ = claims["sub"].(string)
	}
	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("subject claim: %w", err)
	}

	roleName, _ := claims["role"].(string)
	role, err := kernel.RoleFromString(roleName)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("role claim: %w", err)
	}

	return kernel.NewActor(id, role)
}

// actorFrom returns the caller stored by Authenticate. Unauthenticated
// requests yield the zero Actor, which every policy check rejects.
func actorFrom(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorContextKey).(kernel.Actor)
	return actor
}
