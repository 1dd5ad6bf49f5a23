// Package models defines client-side data models used by the gophauth CLI.
package models

import (
	"time"

	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Tokens is the credential pair handed out by Authenticate and Rotate.
type Tokens struct {
	AccessToken          string
	AccessTokenExpiresAt time.Time

	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// Principal is the account view returned by Register and WhoAmI.
type Principal struct {
	ID        string
	Email     string
	Role      string
	Name      string
	CreatedAt time.Time
}

// TokensFromPB converts the wire pair. A nil message yields the zero pair.
func TokensFromPB(t *pb.Tokens) Tokens {
	return Tokens{
		AccessToken:           t.GetAccessToken(),
		AccessTokenExpiresAt:  timeFromPB(t.GetAccessTokenExpiresAt()),
		RefreshToken:          t.GetRefreshToken(),
		RefreshTokenExpiresAt: timeFromPB(t.GetRefreshTokenExpiresAt()),
	}
}

func PrincipalFromPB(p *pb.Principal) *Principal {
	return &Principal{
		ID:        p.GetId(),
		Email:     p.GetEmail(),
		Role:      p.GetRole(),
		Name:      p.GetName(),
		CreatedAt: timeFromPB(p.GetCreatedAt()),
	}
}

// timeFromPB keeps an unset timestamp as the zero time rather than the
// Unix epoch.
func timeFromPB(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
