package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string        `env:"PORT,      default=8080"`
	Env      string        `env:"ENV,       default=development"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`

	// JWTSecret signs every issued token. There is no usable fallback, so a
	// missing value fails startup.
	JWTSecret string `env:"JWT_SECRET, required"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	DSN string `env:"DATABASE_DSN, default=postgres://localhost:5432/navihub"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values are fatal.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
