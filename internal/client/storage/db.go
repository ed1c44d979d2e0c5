// Package storage opens the session database backing the session store.
//
// The database is SQLite (modernc.org/sqlite, no cgo). The default DSN names a
// shared in-memory database, so its contents live exactly as long as the
// process: one run of the client is one session.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/popx/internal/client/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// DefaultDSN is a named in-memory database shared by all pool connections.
const DefaultDSN = "file:popx_session?mode=memory&cache=shared"

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open connects to the session database at dsn and migrates it.
//
// The pool is limited to one connection: access is single-writer anyway,
// and a single connection keeps an in-memory database alive and free of
// shared-cache lock contention.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping session db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	return db, nil
}
