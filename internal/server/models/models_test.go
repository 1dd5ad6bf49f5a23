package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "", want: RoleUser},
		{in: "user", want: RoleUser},
		{in: " Admin ", want: RoleAdmin},
		{in: "root", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrincipal_View(t *testing.T) {
	p := &Principal{ID: "id", Email: "a@b.c", PasswordHash: "$2a$...", Role: RoleAdmin, Name: "A"}
	v := p.View()
	assert.Equal(t, PrincipalView{ID: "id", Email: "a@b.c", Role: RoleAdmin, Name: "A"}, v)
}

func TestRefreshToken_Valid(t *testing.T) {
	exp := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	tok := &RefreshToken{ExpiresAt: exp}

	assert.True(t, tok.Valid(exp.Add(-time.Second)))
	assert.True(t, tok.Valid(exp))
	assert.False(t, tok.Valid(exp.Add(time.Nanosecond)))
}

func TestRefreshToken_ChainStart(t *testing.T) {
	issued := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	started := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, started, (&RefreshToken{IssuedAt: issued, SessionStartedAt: started}).ChainStart())
	assert.Equal(t, issued, (&RefreshToken{IssuedAt: issued}).ChainStart())
}
