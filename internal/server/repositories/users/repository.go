// Package users is the credential store: principal records keyed by a
// unique, normalized e-mail identity.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository persists principals. Implementations return
// common.ErrConflict when the identity is already taken and
// common.ErrorNotFound when a lookup matches nothing.
type Repository interface {
	Create(ctx context.Context, p *models.Principal) (*models.Principal, error)
	FindByIdentity(ctx context.Context, email string) (*models.Principal, error)
	FindByID(ctx context.Context, id string) (*models.Principal, error)
}
