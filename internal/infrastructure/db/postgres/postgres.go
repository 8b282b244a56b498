package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 10 * time.Second

// Connection wraps a pgx connection pool. Each query acquires a pooled
// session and releases it when done, so request handlers never hold a
// connection across calls.
type Connection struct {
	*pgxpool.Pool
}

// Connect parses the DSN, opens a connection pool and verifies connectivity
// with a ping. A default timeout is applied to the initial ping.
func Connect(ctx context.Context, dsn string) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("open connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return &Connection{Pool: pool}, nil
}

// EnsureSchema creates the users and links tables when absent. It never
// alters existing tables; there is no migration engine.
func (c *Connection) EnsureSchema(ctx context.Context) error {
	const stmt = `
        CREATE TABLE IF NOT EXISTS users (
            id            BIGSERIAL PRIMARY KEY,
            username      TEXT NOT NULL UNIQUE,
            email         TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            is_admin      BOOLEAN NOT NULL DEFAULT FALSE
        );

        CREATE TABLE IF NOT EXISTS links (
            id          BIGSERIAL PRIMARY KEY,
            name        TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            url         TEXT NOT NULL,
            icon        TEXT NOT NULL DEFAULT '',
            "group"     TEXT NOT NULL DEFAULT ''
        );
    `

	if _, err := c.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (c *Connection) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	return nil
}
