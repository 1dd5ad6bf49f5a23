// Package models defines server-side data models persisted in the database.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Role is a principal's authorization class. It is copied into every
// access token as a claim.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps "" to RoleUser and rejects anything else it does not know.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", common.ErrInvalidInput, s)
	}
}

func (r Role) String() string { return string(r) }

// Principal is a registered account. Email is stored normalized and is
// unique across principals. PasswordHash is a bcrypt digest and must never
// leave the server.
type Principal struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	Name         string
	CreatedAt    time.Time
}

// PrincipalView is the part of a Principal that may be shown to a caller.
type PrincipalView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// View strips the password hash.
func (p *Principal) View() PrincipalView {
	return PrincipalView{
		ID:        p.ID,
		Email:     p.Email,
		Role:      p.Role,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
