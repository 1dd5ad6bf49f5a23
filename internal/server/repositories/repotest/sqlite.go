// Package repotest opens migrated throwaway databases for repository and
// service tests.
package repotest

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// SQLiteDSN returns a DSN for a fresh database file under the test's temp dir.
func SQLiteDSN(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gophauth.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// OpenSQLite opens a fresh SQLite database with the schema applied. All
// access goes through one connection, the same way the server runs SQLite.
func OpenSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", SQLiteDSN(t))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	migrate(t, db)
	return db
}

func migrate(t testing.TB, db *sql.DB) {
	t.Helper()

	fsys, err := fs.Sub(migrations.Migrations, migrations.SQLiteDir)
	require.NoError(t, err)

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	require.NoError(t, err)

	_, err = provider.Up(context.Background())
	require.NoError(t, err)
}

// OpenSQLiteShared opens a migrated SQLite file and returns two independent
// handles to it, each with its own connection pool.
func OpenSQLiteShared(t testing.TB) (*sql.DB, *sql.DB) {
	t.Helper()

	dsn := SQLiteDSN(t)
	open := func() *sql.DB {
		db, err := sql.Open("sqlite", dsn)
		require.NoError(t, err)
		db.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = db.Close() })
		return db
	}

	first := open()
	migrate(t, first)
	return first, open()
}

// CountRefreshTokens returns how many refresh token rows userID has,
// expired ones included.
func CountRefreshTokens(t testing.TB, db *sql.DB, userID string) int {
	t.Helper()

	var n int
	err := db.QueryRowContext(context.Background(), `SELECT count(*) FROM refresh_tokens WHERE user_id = ?`, userID).Scan(&n)
	require.NoError(t, err)
	return n
}
