// Package session keeps the client's current token pair in a local SQLite
// file so that separate invocations share one session.
package session

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	keyPrincipalID           = "principal_id"
	keyAccessToken           = "access_token"
	keyAccessTokenExpiresAt  = "access_token_expires_at"
	keyRefreshToken          = "refresh_token"
	keyRefreshTokenExpiresAt = "refresh_token_expires_at"
)

// ErrNoSession is returned by Load when nothing was saved.
var ErrNoSession = errors.New("no saved session")

// Session is what the client remembers between runs.
type Session struct {
	PrincipalID string
	Tokens      models.Tokens
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the session file at path.
func Open(ctx context.Context, path string) (*Store, error) {
	path, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("session migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored session.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	values := map[string]string{
		keyPrincipalID:           sess.PrincipalID,
		keyAccessToken:           sess.Tokens.AccessToken,
		keyAccessTokenExpiresAt:  sess.Tokens.AccessTokenExpiresAt.UTC().Format(time.RFC3339Nano),
		keyRefreshToken:          sess.Tokens.RefreshToken,
		keyRefreshTokenExpiresAt: sess.Tokens.RefreshTokenExpiresAt.UTC().Format(time.RFC3339Nano),
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for k, v := range values {
			if err := set(ctx, tx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the stored session or ErrNoSession.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	values, err := list(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if len(values[keyRefreshToken]) == 0 {
		return nil, ErrNoSession
	}

	accessExp, err := parseTime(values[keyAccessTokenExpiresAt])
	if err != nil {
		return nil, err
	}
	refreshExp, err := parseTime(values[keyRefreshTokenExpiresAt])
	if err != nil {
		return nil, err
	}

	return &Session{
		PrincipalID: string(values[keyPrincipalID]),
		Tokens: models.Tokens{
			AccessToken:           string(values[keyAccessToken]),
			AccessTokenExpiresAt:  accessExp,
			RefreshToken:          string(values[keyRefreshToken]),
			RefreshTokenExpiresAt: refreshExp,
		},
	}, nil
}

// Clear forgets the stored session.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func parseTime(b []byte) (time.Time, error) {
	if len(b) == 0 {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt session time %q: %w", b, err)
	}
	return t, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func list(ctx context.Context, db dbx.DBTX) (map[string][]byte, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return nil, fmt.Errorf("failed to list session: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	return result, nil
}
