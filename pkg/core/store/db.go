// Package store persists assembled company profiles in Postgres. The whole
// package is optional: nothing initializes the pool unless DATABASE_URL is
// configured, and the pipeline runs fine without it.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the shared connection pool from DATABASE_URL. Safe to
// call more than once; only the first call connects.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL not set; profile persistence disabled")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse DATABASE_URL: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
	})
	return err
}

// GetPool returns the shared pool, nil until InitDB succeeds.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the pool at shutdown.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
