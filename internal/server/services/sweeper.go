package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// Sweeper periodically purges refresh tokens past their expiry. Expired
// tokens are already rejected by rotation, so sweeping only reclaims space.
type Sweeper struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	interval    time.Duration
	now         func() time.Time
	log         logging.Logger
	metrics     *metrics.Metrics
}

func NewSweeper(db *sql.DB, m repomanager.RepositoryManager, interval time.Duration, log logging.Logger, mt *metrics.Metrics) *Sweeper {
	return &Sweeper{
		db:          db,
		repomanager: m,
		interval:    interval,
		now:         time.Now,
		log:         log.With("module", "sweeper"),
		metrics:     mt,
	}
}

// SweepOnce deletes every refresh token that expired before now.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	n, err := s.repomanager.RefreshTokens(s.db).DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error sweeping refresh tokens: %w", err)
	}
	s.metrics.Swept(n)
	if n > 0 {
		s.log.Info(ctx, "expired refresh tokens swept", "count", n)
	}
	return n, nil
}

// Run sweeps every interval until ctx is done. A non-positive interval
// disables sweeping. Sweep errors are logged and do not stop the loop.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				s.log.Error(ctx, "sweep failed", "error", err)
			}
		}
	}
}
