// Package server wires configuration, storage, the session core and the
// network servers together and runs them until the context is done.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/ops"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	metrics  *metrics.Metrics
	sessions *services.SessionService
	sweeper  *services.Sweeper
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	m := metrics.New()

	sessions, err := services.NewSessionService(db, rm, c, services.WithLogger(logger), services.WithMetrics(m))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sweeper := services.NewSweeper(db, rm, c.SweepInterval, logger, m)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		metrics:  m,
		sessions: sessions,
		sweeper:  sweeper,
	}, nil
}

// Run serves gRPC and ops traffic and sweeps expired tokens until ctx is
// done or one of them fails. The database is closed on return.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver, "env", app.config.Env)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessions,
		gs.WithRateLimit(app.config.AuthRateLimit, app.config.AuthRateBurst))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return grpcServer.Run(ctx) })
	if app.config.OpsAddr != "" {
		opsServer := ops.NewServer(app.config.OpsAddr, app.db, app.metrics.Registry(), app.logger)
		g.Go(func() error { return opsServer.Run(ctx) })
	}
	g.Go(func() error { return app.sweeper.Run(ctx) })

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, "app stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
