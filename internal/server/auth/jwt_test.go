package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("super-secret"), time.Hour, 32)
	userID := "user-123"

	tok, exp, err := iss.IssueAccess(userID, models.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry must be in the future, got %v", exp)
	}

	claims, err := iss.VerifyAccess(tok)
	if err != nil {
		t.Fatalf("VerifyAccess error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, userID)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("role mismatch: got %q", claims.Role)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("issued/expires claims must be set")
	}
}

func TestVerifyAccess_Expired(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	secret := []byte("secret")

	tok, _, err := NewIssuer(secret, 15*time.Minute, 32, WithClock(fixedClock(start))).IssueAccess("u1", models.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}

	later := NewIssuer(secret, 15*time.Minute, 32, WithClock(fixedClock(start.Add(16*time.Minute))))
	_, err = later.VerifyAccess(tok)
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}

	earlier := NewIssuer(secret, 15*time.Minute, 32, WithClock(fixedClock(start.Add(14*time.Minute))))
	if _, err := earlier.VerifyAccess(tok); err != nil {
		t.Fatalf("token must still be valid before expiry, got %v", err)
	}
}

func TestVerifyAccess_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewIssuer([]byte("right-secret"), time.Hour, 32).IssueAccess("u2", models.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}

	_, err = NewIssuer([]byte("wrong-secret"), time.Hour, 32).VerifyAccess(tok)
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerifyAccess_Malformed(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("k"), time.Hour, 32)
	for _, s := range []string{"", "not.a.jwt", "abc"} {
		if _, err := iss.VerifyAccess(s); err != common.ErrMalformedToken {
			t.Fatalf("%q: expected common.ErrMalformedToken, got %v", s, err)
		}
	}
}

func TestVerifyAccess_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   "u3",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "u3",
	})
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer(secret, time.Hour, 32).VerifyAccess(s); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerifyAccess_RequiresExpiry(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuerName, Subject: "u4"},
		UserID:           "u4",
	})
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer(secret, time.Hour, 32).VerifyAccess(s); !common.IsAccessTokenError(err) {
		t.Fatalf("expected access token error, got %v", err)
	}
}

func TestNewIssuer_CopiesSecret(t *testing.T) {
	t.Parallel()

	secret := []byte("mutable")
	iss := NewIssuer(secret, time.Hour, 32)
	tok, _, err := iss.IssueAccess("u5", models.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}

	copy(secret, "XXXXXXX")

	if _, err := iss.VerifyAccess(tok); err != nil {
		t.Fatalf("issuer must keep its own copy of the secret: %v", err)
	}
}

func TestIssueRefresh(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("k"), time.Hour, 32)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := iss.IssueRefresh()
		if err != nil {
			t.Fatalf("IssueRefresh error: %v", err)
		}
		if len(tok) != 64 {
			t.Fatalf("expected 64 hex chars, got %d", len(tok))
		}
		if strings.Trim(tok, "0123456789abcdef") != "" {
			t.Fatalf("token is not lower-case hex: %q", tok)
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("duplicate refresh token %q", tok)
		}
		seen[tok] = struct{}{}
	}
}
