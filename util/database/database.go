package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DB wraps a *sql.DB together with the dialect it speaks. Repositories build
// their statements through Builder so the same code runs on both drivers.
type DB struct {
	Conn   *sql.DB
	Driver string

	pool *pgxpool.Pool
}

func New(ctx context.Context, driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite, "":
		return openSQLite(ctx, dsn)
	case DriverPostgres:
		return openPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func openSQLite(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty database path")
	}
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer; keeps pragmas on the single pooled connection
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := conn.ExecContext(ctx, p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}
	return &DB{Conn: conn, Driver: DriverSQLite}, nil
}

func openPostgres(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &DB{Conn: stdlib.OpenDBFromPool(p), Driver: DriverPostgres, pool: p}, nil
}

// Builder returns a squirrel builder using the placeholder format of the driver.
func (d *DB) Builder() sq.StatementBuilderType {
	if d.Driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (d *DB) Ping(ctx context.Context) error { return d.Conn.PingContext(ctx) }

func (d *DB) Close() error {
	err := d.Conn.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}
