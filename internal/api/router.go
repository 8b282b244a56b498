package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/navihub/navihub/internal/api/handler"
	"github.com/navihub/navihub/internal/api/middleware"
	"github.com/navihub/navihub/internal/core/ports"
	"github.com/navihub/navihub/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Mutating link and user routes are registered with and without a trailing
// slash, pointing at the same handler. Redirecting between the two would make
// some clients drop the Authorization header, so both spellings are served
// directly.
func NewRouter(
	db *postgres.Connection,
	authService ports.AuthService,
	linkService ports.LinkService,
	userService ports.UserService,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("navihub"))

	// Permissive cross-origin policy: every origin, method and header, with
	// credentials. Intended for trusted or internal deployments only.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:                             []string{"*"},
		AllowMethods:                             []string{"*"},
		AllowHeaders:                             []string{"*"},
		AllowCredentials:                         true,
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	linkHandler := handler.NewLinkHandler(linkService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(db)

	authMW := middleware.Auth(authService)
	adminMW := middleware.AdminOnly()

	// --- Auth routes ---
	e.POST("/api/auth/token", authHandler.Login)
	e.POST("/api/auth/token/", authHandler.Login)

	// --- Link routes ---
	links := e.Group("/api/links", authMW)
	links.GET("", linkHandler.List)
	links.GET("/", linkHandler.List)
	links.POST("", linkHandler.Create, adminMW)
	links.POST("/", linkHandler.Create, adminMW)
	links.PUT("/:id", linkHandler.Update, adminMW)
	links.PUT("/:id/", linkHandler.Update, adminMW)
	links.DELETE("/:id", linkHandler.Delete, adminMW)
	links.DELETE("/:id/", linkHandler.Delete, adminMW)

	// --- User routes ---
	users := e.Group("/api/users", authMW)
	users.GET("/me", userHandler.Me)
	users.GET("/me/", userHandler.Me)
	users.GET("", userHandler.List, adminMW)
	users.GET("/", userHandler.List, adminMW)
	users.POST("", userHandler.Create, adminMW)
	users.POST("/", userHandler.Create, adminMW)
	users.PUT("/:id", userHandler.Update, adminMW)
	users.PUT("/:id/", userHandler.Update, adminMW)
	users.DELETE("/:id", userHandler.Delete, adminMW)
	users.DELETE("/:id/", userHandler.Delete, adminMW)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	return e
}
