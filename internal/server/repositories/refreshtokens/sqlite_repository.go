package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// SQLiteRepository implements Repository for SQLite. Timestamps are stored
// as UTC unix nanoseconds.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// nanos maps the zero time to 0 since UnixNano is undefined that far back.
func nanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

func (r *SQLiteRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (token, user_id, issued_at, expires_at, session_started_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (token) DO NOTHING`

	n, err := r.exec(ctx, query,
		t.Token, t.UserID, nanos(t.IssuedAt), nanos(t.ExpiresAt), nanos(t.SessionStartedAt), nanos(t.IssuedAt))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrConflict
		}
		return err
	}
	if n == 0 {
		return common.ErrConflict
	}
	return nil
}

// TakeValid is a single DELETE ... RETURNING. SQLite holds the write lock
// for the statement, so a concurrent caller sees the row already gone.
func (r *SQLiteRepository) TakeValid(ctx context.Context, token string, now time.Time) (*models.RefreshToken, error) {
	query := `DELETE FROM refresh_tokens WHERE token = ? AND expires_at >= ?
		RETURNING user_id, issued_at, expires_at, session_started_at`

	var issuedAt, expiresAt, startedAt int64
	t := &models.RefreshToken{Token: token}

	err := r.db.QueryRowContext(ctx, query, token, nanos(now)).
		Scan(&t.UserID, &issuedAt, &expiresAt, &startedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	t.IssuedAt = fromNanos(issuedAt)
	t.ExpiresAt = fromNanos(expiresAt)
	if startedAt != 0 {
		t.SessionStartedAt = fromNanos(startedAt)
	}
	return t, nil
}

func (r *SQLiteRepository) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	return r.exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < ?`, nanos(now))
}

func (r *SQLiteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
