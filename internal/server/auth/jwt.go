// Package auth mints and verifies the credentials handed to clients:
// signed HS256 access tokens and opaque random refresh tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

const issuerName = "gophauth"

// Claims is the access token payload: the standard registered claims plus
// the principal id and role tag.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"uid"`
	Role   models.Role `json:"role,omitempty"`
}

// Issuer holds the signing secret and token policy. It is immutable after
// construction and safe for concurrent use.
type Issuer struct {
	secretKey    []byte
	accessTTL    time.Duration
	refreshBytes int
	now          func() time.Time
}

type Option func(*Issuer)

// WithClock overrides time.Now for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer copies secretKey so later changes to the caller's slice have no effect.
func NewIssuer(secretKey []byte, accessTTL time.Duration, refreshBytes int, opts ...Option) *Issuer {
	key := make([]byte, len(secretKey))
	copy(key, secretKey)

	i := &Issuer{
		secretKey:    key,
		accessTTL:    accessTTL,
		refreshBytes: refreshBytes,
		now:          time.Now,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// IssueAccess signs a token for userID that expires accessTTL from now.
func (i *Issuer) IssueAccess(userID string, role models.Role) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.accessTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// VerifyAccess checks signature and expiry and returns the claims.
// Failures are one of common.ErrMalformedToken, common.ErrTokenExpired or
// common.ErrInvalidToken.
func (i *Issuer) VerifyAccess(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuerName),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrInvalidToken
		}
	}

	if !token.Valid || claims.UserID == "" || claims.UserID != claims.Subject {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// IssueRefresh returns a fresh opaque refresh token: refreshBytes random
// bytes, hex-encoded.
func (i *Issuer) IssueRefresh() (string, error) {
	s, err := common.MakeRandHexString(i.refreshBytes)
	if err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}
	return s, nil
}
