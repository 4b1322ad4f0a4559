// Package cache opens the client's local SQLite database and hands out the
// repositories built on it.
package cache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/prepshare/prepshare/internal/client/migrations"
	"github.com/prepshare/prepshare/internal/client/repositories/experiences"
	"github.com/prepshare/prepshare/internal/client/repositories/metadata"
)

// Repositories bundles the stores backed by the cache DB.
type Repositories struct {
	Metadata    metadata.Repository
	Experiences experiences.Repository

	db *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the cache at dsn, migrates it and
// returns the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Metadata:    metadata.NewSQLiteRepository(db),
		Experiences: experiences.NewSQLiteRepository(db),
		db:          db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
