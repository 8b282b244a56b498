package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navihub/navihub/internal/api"
	"github.com/navihub/navihub/internal/core/service"
	"github.com/navihub/navihub/internal/infrastructure/config"
	"github.com/navihub/navihub/internal/infrastructure/db/postgres"
	"github.com/navihub/navihub/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	userRepo := postgres.NewUserRepository(db)
	linkRepo := postgres.NewLinkRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	linkService := service.NewLinkService(linkRepo, log)
	userService := service.NewUserService(userRepo, authService, log)

	// One-time bootstrap: make sure an admin account exists before the
	// server starts accepting connections.
	if err := userService.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap default admin")
	}

	e := api.NewRouter(db, authService, linkService, userService, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
