package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_SweepOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.register(t, "a@x.com", "secret1")

	_, err := f.svc.Authenticate(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	f.clock.Advance(6 * 24 * time.Hour)
	_, err = f.svc.Authenticate(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	mt := metrics.New()
	sw := NewSweeper(f.db, f.rm, time.Minute, logging.Nop{}, mt)
	sw.now = func() time.Time { return f.clock.Now().Add(2 * 24 * time.Hour) }

	n, err := sw.SweepOnce(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, 1, f.tokenCount(t, p.ID))

	expected := `
# HELP gophauth_refresh_tokens_swept_total Expired refresh token records removed by the sweeper.
# TYPE gophauth_refresh_tokens_swept_total counter
gophauth_refresh_tokens_swept_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(mt.Registry(), strings.NewReader(expected), "gophauth_refresh_tokens_swept_total"))
}

type countingTokens struct {
	refreshtokens.Repository
	calls chan struct{}
}

func (c countingTokens) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	select {
	case c.calls <- struct{}{}:
	default:
	}
	return 0, errors.New("db down")
}

type countingManager struct {
	repomanager.SQLiteRepositoryManager
	calls chan struct{}
}

func (m *countingManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return countingTokens{calls: m.calls}
}

func TestSweeper_RunTicksUntilCancelled(t *testing.T) {
	rm := &countingManager{calls: make(chan struct{}, 1)}
	sw := NewSweeper(nil, rm, 5*time.Millisecond, logging.Nop{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sw.Run(ctx) }()

	select {
	case <-rm.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper never ran")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "sweep errors do not stop the loop")
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_DisabledWaitsForCancel(t *testing.T) {
	sw := NewSweeper(nil, &countingManager{calls: make(chan struct{}, 1)}, 0, logging.Nop{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, sw.Run(ctx))
}
