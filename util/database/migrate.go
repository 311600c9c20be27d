package database

import (
	"context"
	"fmt"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		title  TEXT NOT NULL,
		author TEXT NOT NULL,
		isbn   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id    INTEGER PRIMARY KEY AUTOINCREMENT,
		name  TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auth_tokens (
		token      TEXT PRIMARY KEY,
		username   TEXT NOT NULL,
		issued_at  INTEGER NOT NULL,
		expires_at INTEGER
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS books (
		id     BIGSERIAL PRIMARY KEY,
		title  TEXT NOT NULL,
		author TEXT NOT NULL,
		isbn   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS auth_tokens (
		token      TEXT PRIMARY KEY,
		username   TEXT NOT NULL,
		issued_at  BIGINT NOT NULL,
		expires_at BIGINT
	)`,
}

// Migrate creates the tables if they are missing. It is idempotent.
func (d *DB) Migrate(ctx context.Context) error {
	stmts := sqliteSchema
	if d.Driver == DriverPostgres {
		stmts = postgresSchema
	}
	for _, s := range stmts {
		if _, err := d.Conn.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
