package infra

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/umalmyha/customers-sqlite/internal/config"

	// sqlite driver registration
	_ "modernc.org/sqlite"
)

const customersSchema = `CREATE TABLE IF NOT EXISTS customers (
	customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT,
	email       TEXT,
	phone       TEXT,
	address     TEXT
)`

// Sqlite opens (or creates) database file and makes sure customers table exists.
// Safe to call against already initialized database, existing rows are untouched.
func Sqlite(ctx context.Context, cfg config.SqliteCfg) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", filepath.Clean(cfg.Path), cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s - %w", cfg.Path, err)
	}

	// single writer, so a single connection keeps statements serialized
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("didn't get response from sqlite database after sending ping request - %w", err)
	}

	if _, err := db.ExecContext(ctx, customersSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize customers table - %w", err)
	}
	return db, nil
}
