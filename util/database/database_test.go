package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_SQLiteMigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := New(ctx, DriverSQLite, filepath.Join(t.TempDir(), "nested", "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Ping(ctx))

	for _, table := range []string{"books", "members", "auth_tokens"} {
		var n int
		err := db.Conn.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n)
		require.NoError(t, err)
		require.Equal(t, 1, n, table)
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), "mysql", "x")
	require.Error(t, err)
}

func TestBuilder_Placeholders(t *testing.T) {
	lite := &DB{Driver: DriverSQLite}
	q, _, err := lite.Builder().Select("id").From("books").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM books WHERE id = ?", q)

	pg := &DB{Driver: DriverPostgres}
	q, _, err = pg.Builder().Select("id").From("books").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	require.Equal(t, "SELECT id FROM books WHERE id = $1", q)
}

func TestIsConstraintViolation(t *testing.T) {
	ctx := context.Background()
	db, err := New(ctx, DriverSQLite, filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	_, err = db.Conn.ExecContext(ctx, `INSERT INTO books (title, author, isbn) VALUES (NULL, 'a', 'i')`)
	require.Error(t, err)
	require.True(t, IsConstraintViolation(err))

	require.False(t, IsConstraintViolation(context.Canceled))
}
