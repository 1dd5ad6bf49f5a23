// Package grpc exposes the session core over gRPC. It authenticates
// protected calls with the access token from metadata, rate limits the
// credential endpoints and maps domain errors to status codes.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// SessionManager is the part of services.SessionService the transport uses.
type SessionManager interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.PrincipalView, error)
	Authenticate(ctx context.Context, identity, password string) (*services.AuthResult, error)
	Rotate(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, principalID string) error
	VerifyAccess(ctx context.Context, accessToken string) (string, error)
	Principal(ctx context.Context, principalID string) (*models.PrincipalView, error)
}

type GRPCServer struct {
	pb.UnimplementedSessionServiceServer
	address  string
	sessions SessionManager
	logger   logging.Logger
	limiter  *rateLimiter
	health   *health.Server
}

type Option func(*GRPCServer)

// WithRateLimit limits Register and Authenticate to limit calls per second
// with the given burst, per client address. A non-positive limit disables it.
func WithRateLimit(limit float64, burst int) Option {
	return func(s *GRPCServer) { s.limiter = newRateLimiter(limit, burst) }
}

func NewGRPCServer(address string, l logging.Logger, sessions SessionManager, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		sessions: sessions,
		health:   health.NewServer(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newServer builds the grpc.Server with interceptors and services registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestLogInterceptor,
		s.rateLimitInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterSessionServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.SessionService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
