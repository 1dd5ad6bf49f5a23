package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/migrations"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager is the single-node alternative to Postgres. Its
// DSN should enable foreign keys, e.g. "auth.db?_pragma=foreign_keys(1)".
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded sqlite migrations, logging through l.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, l logging.Logger) error {
	return runMigrations(ctx, db, goose.DialectSQLite3, migrations.SQLiteDir, l)
}
