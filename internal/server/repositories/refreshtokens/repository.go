// Package refreshtokens declares the server-side repository contract for
// refresh tokens and its PostgreSQL and SQLite implementations.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository defines operations for issuing, consuming and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token. It returns common.ErrConflict when
	// the token value already exists.
	Create(ctx context.Context, token *models.RefreshToken) error

	// TakeValid finds the token with expires_at >= now and deletes it in the
	// same statement. Of several concurrent callers presenting the same token
	// at most one gets the record; the others get common.ErrorNotFound, as
	// do callers presenting an absent or expired token.
	TakeValid(ctx context.Context, token string, now time.Time) (*models.RefreshToken, error)

	// DeleteAllForUser removes every token of userID. Zero rows is not an error.
	DeleteAllForUser(ctx context.Context, userID string) (int64, error)

	// DeleteExpired physically removes tokens with expires_at < now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
