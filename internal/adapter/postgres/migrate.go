package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/WeAreTheArtMakers/mindTrace/migrations"
)

var (
	schemaOnce sync.Once
	schemaErr  error
)

// EnsureSchema applies pending migrations once per process. Later calls
// return the result of the first attempt.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	schemaOnce.Do(func() {
		var applied []*goose.MigrationResult
		applied, schemaErr = Migrate(ctx, pool)
		if schemaErr == nil {
			logger.InfoContext(ctx, "database schema ready", slog.Int("applied", len(applied)))
		}
	})
	return schemaErr
}

// Migrate applies all pending embedded migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationResult, error) {
	provider, closeDB, err := newGooseProvider(pool)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// MigrationStatus reports the state of every embedded migration.
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationStatus, error) {
	provider, closeDB, err := newGooseProvider(pool)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	return status, nil
}

// newGooseProvider wraps the pool in a *sql.DB, which goose requires.
func newGooseProvider(pool *pgxpool.Pool) (*goose.Provider, func(), error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, func() { _ = db.Close() }, nil
}
