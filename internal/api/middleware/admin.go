package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navihub/navihub/internal/core/domain"
)

// AdminOnly rejects requests whose authenticated user lacks the admin flag.
// It must run after Auth; a missing user in context means the chain is
// miswired and is treated as unauthenticated.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(UserContextKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.IsAdmin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
