package models

import "time"

// RefreshToken is one issued refresh credential. The token string is the
// primary key. SessionStartedAt is the moment the chain began at
// Authenticate and is carried unchanged through every rotation.
type RefreshToken struct {
	Token            string
	UserID           string
	IssuedAt         time.Time
	ExpiresAt        time.Time
	SessionStartedAt time.Time
}

// Valid reports whether the token has not yet expired at now. A token
// whose expiry equals now is still valid.
func (t *RefreshToken) Valid(now time.Time) bool {
	return !now.After(t.ExpiresAt)
}

// ChainStart returns the session anchor, falling back to IssuedAt for rows
// that carry no anchor.
func (t *RefreshToken) ChainStart() time.Time {
	if t.SessionStartedAt.IsZero() {
		return t.IssuedAt
	}
	return t.SessionStartedAt
}
