package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// protectedMethods carry the access token.
var protectedMethods = map[string]bool{
	pb.SessionService_Logout_FullMethodName: true,
	pb.SessionService_WhoAmI_FullMethodName: true,
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SessionServiceClient

	mu     sync.Mutex
	tokens models.Tokens
}

type Option func(*GRPCClient)

// WithTokens starts the client with a previously saved pair.
func WithTokens(t models.Tokens) Option {
	return func(c *GRPCClient) { c.tokens = t }
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if !protectedMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	tokens := s.Tokens()
	err := invoker(withAccessToken(ctx, tokens.AccessToken), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	if status.Code(err) != codes.Unauthenticated || tokens.RefreshToken == "" {
		return err
	}

	if rerr := s.rotate(ctx, tokens.RefreshToken); rerr != nil {
		return rerr
	}

	// tokens rotated, retry once with the new access token
	return invoker(withAccessToken(ctx, s.Tokens().AccessToken), method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	for _, o := range opts {
		o(c)
	}

	conn, err := grpc.NewClient(c.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewSessionServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Tokens returns the current pair.
func (s *GRPCClient) Tokens() models.Tokens {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens
}

func (s *GRPCClient) setTokens(t models.Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = t
}

func (s *GRPCClient) Register(ctx context.Context, identity string, password []byte, name string) (*models.Principal, error) {

	req := &pb.RegisterRequest{Identity: identity, Password: string(password), Name: name}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return models.PrincipalFromPB(resp.GetPrincipal()), nil
}

// Login authenticates and keeps the returned pair. It returns the
// principal id.
func (s *GRPCClient) Login(ctx context.Context, identity string, password []byte) (string, error) {

	req := &pb.AuthenticateRequest{Identity: identity, Password: string(password)}

	resp, err := s.client.Authenticate(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	s.setTokens(models.TokensFromPB(resp.GetTokens()))
	return resp.GetPrincipalId(), nil
}

// Refresh rotates the current refresh token.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	token := s.Tokens().RefreshToken
	if token == "" {
		return ErrNotLoggedIn
	}
	return s.rotate(ctx, token)
}

func (s *GRPCClient) rotate(ctx context.Context, refreshToken string) error {
	resp, err := s.client.Rotate(ctx, &pb.RotateRequest{RefreshToken: refreshToken})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(models.TokensFromPB(resp.GetTokens()))
	return nil
}

// Logout revokes every refresh token of the principal on the server and
// forgets the local pair.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if s.Tokens().AccessToken == "" {
		return ErrNotLoggedIn
	}

	_, err := s.client.Logout(ctx, &pb.LogoutRequest{})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(models.Tokens{})
	return nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (*models.Principal, error) {
	if s.Tokens().AccessToken == "" {
		return nil, ErrNotLoggedIn
	}

	resp, err := s.client.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return models.PrincipalFromPB(resp.GetPrincipal()), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrSessionExpired.Error() {
			return ErrSessionExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrAlreadyRegistered
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
