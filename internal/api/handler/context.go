package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navihub/navihub/internal/api/middleware"
	"github.com/navihub/navihub/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth
// middleware. A nil user means the route is miswired (handler mounted
// without Auth); fail closed with 401 rather than proceeding anonymously.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
