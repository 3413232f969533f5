package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, cfg models.DatabaseConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		config.MaxConns = cfg.MaxConns
	}
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		seq BIGSERIAL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		cuisines TEXT[] NOT NULL DEFAULT '{}',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		delivery_time_estimate TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		cuisine TEXT NOT NULL DEFAULT '',
		reviews_count INTEGER NOT NULL DEFAULT 0,
		opening_hours TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT NOT NULL,
		restaurant_id TEXT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		category_id TEXT NOT NULL,
		category TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10, 2) NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		customizations JSONB NOT NULL DEFAULT '[]',
		PRIMARY KEY (restaurant_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS menu_items_restaurant_position_idx ON menu_items (restaurant_id, position)`,
	`CREATE TABLE IF NOT EXISTS checkout_events (
		id TEXT PRIMARY KEY,
		topic TEXT NOT NULL,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate creates the catalog and checkout tables when missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
