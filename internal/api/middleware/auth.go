package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/navihub/navihub/internal/core/domain"
)

// UserContextKey is the echo context key under which Auth stores the
// authenticated *domain.User.
const UserContextKey = "user"

// UserResolver resolves a bearer token to a live user record.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// Auth validates the bearer token, re-loads the user record and injects it
// into the request context. A token whose account was deleted mid-session is
// rejected like any other invalid token.
func Auth(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.CurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
