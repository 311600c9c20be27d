// Package testutil opens throwaway SQLite databases for tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"libraryapi/util/database"
)

// NewDB returns a migrated database in t.TempDir(), closed on cleanup.
func NewDB(t testing.TB) *database.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.New(ctx, database.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
