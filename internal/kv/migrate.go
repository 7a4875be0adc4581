package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/portalauth/internal/kv/migrations"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func migrate(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect %s: %w", dialect, err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to apply %s migrations: %w", dir, err)
	}
	return nil
}

// MigrateSQLite applies the embedded SQLite schema.
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "sqlite3", "sqlite")
}

// MigratePostgres applies the embedded PostgreSQL schema.
func MigratePostgres(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "pgx", "postgres")
}
