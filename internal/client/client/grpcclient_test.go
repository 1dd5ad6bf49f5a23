package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

/*************
 * Fake session service client
 *************/

type fakeAPI struct {
	lastRegisterReq *pb.RegisterRequest
	lastAuthReq     *pb.AuthenticateRequest
	lastRotateReq   *pb.RotateRequest
	logoutCalls     int

	registerResp *pb.RegisterResponse
	registerErr  error

	authResp *pb.AuthenticateResponse
	authErr  error

	rotateResp *pb.RotateResponse
	rotateErr  error

	logoutErr error

	whoResp *pb.WhoAmIResponse
	whoErr  error
}

func (f *fakeAPI) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	return f.registerResp, f.registerErr
}

func (f *fakeAPI) Authenticate(ctx context.Context, in *pb.AuthenticateRequest, opts ...grpc.CallOption) (*pb.AuthenticateResponse, error) {
	f.lastAuthReq = in
	return f.authResp, f.authErr
}

func (f *fakeAPI) Rotate(ctx context.Context, in *pb.RotateRequest, opts ...grpc.CallOption) (*pb.RotateResponse, error) {
	f.lastRotateReq = in
	return f.rotateResp, f.rotateErr
}

func (f *fakeAPI) Logout(ctx context.Context, in *pb.LogoutRequest, opts ...grpc.CallOption) (*pb.LogoutResponse, error) {
	f.logoutCalls++
	return &pb.LogoutResponse{Ok: f.logoutErr == nil}, f.logoutErr
}

func (f *fakeAPI) WhoAmI(ctx context.Context, in *pb.WhoAmIRequest, opts ...grpc.CallOption) (*pb.WhoAmIResponse, error) {
	return f.whoResp, f.whoErr
}

func newTestClient(f *fakeAPI, opts ...Option) *GRPCClient {
	c := &GRPCClient{client: f}
	for _, o := range opts {
		o(c)
	}
	return c
}

func tokenFrom(ctx context.Context) string {
	md, _ := metadata.FromOutgoingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func TestLogin_StoresTokens(t *testing.T) {
	exp := time.Date(2025, 1, 1, 0, 15, 0, 0, time.UTC)
	f := &fakeAPI{authResp: &pb.AuthenticateResponse{
		PrincipalId: "p1",
		Tokens:      &pb.Tokens{AccessToken: "a1", AccessTokenExpiresAt: timestamppb.New(exp), RefreshToken: "r1"},
	}}
	c := newTestClient(f)

	id, err := c.Login(context.Background(), "a@x.com", []byte("secret1"))
	require.NoError(t, err)

	assert.Equal(t, "p1", id)
	assert.Equal(t, "a@x.com", f.lastAuthReq.GetIdentity())
	assert.Equal(t, "secret1", f.lastAuthReq.GetPassword())
	assert.Equal(t, models.Tokens{AccessToken: "a1", AccessTokenExpiresAt: exp, RefreshToken: "r1"}, c.Tokens())
}

func TestWhoAmI_ConvertsPrincipal(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &fakeAPI{whoResp: &pb.WhoAmIResponse{Principal: &pb.Principal{Id: "p1", Email: "a@x.com", Role: "admin", CreatedAt: timestamppb.New(created)}}}
	c := newTestClient(f, WithTokens(models.Tokens{AccessToken: "a1", RefreshToken: "r1"}))

	p, err := c.WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Principal{ID: "p1", Email: "a@x.com", Role: "admin", CreatedAt: created}, p)
}

func TestRegister_MapsAlreadyExists(t *testing.T) {
	f := &fakeAPI{registerErr: status.Error(codes.AlreadyExists, "identity already registered")}
	c := newTestClient(f)

	_, err := c.Register(context.Background(), "a@x.com", []byte("secret1"), "Ann")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Equal(t, "Ann", f.lastRegisterReq.GetName())
}

func TestRefresh(t *testing.T) {
	f := &fakeAPI{rotateResp: &pb.RotateResponse{Tokens: &pb.Tokens{AccessToken: "a2", RefreshToken: "r2"}}}

	c := newTestClient(f)
	assert.ErrorIs(t, c.Refresh(context.Background()), ErrNotLoggedIn)

	c = newTestClient(f, WithTokens(models.Tokens{AccessToken: "a1", RefreshToken: "r1"}))
	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, "r1", f.lastRotateReq.GetRefreshToken())
	assert.Equal(t, "r2", c.Tokens().RefreshToken)

	f.rotateErr = status.Error(codes.Unauthenticated, common.ErrSessionExpired.Error())
	assert.ErrorIs(t, c.Refresh(context.Background()), ErrSessionExpired)
}

func TestLogout_ClearsTokens(t *testing.T) {
	f := &fakeAPI{}
	c := newTestClient(f, WithTokens(models.Tokens{AccessToken: "a1", RefreshToken: "r1"}))

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, 1, f.logoutCalls)
	assert.Equal(t, models.Tokens{}, c.Tokens())

	assert.ErrorIs(t, c.Logout(context.Background()), ErrNotLoggedIn)
}

func TestInterceptor_UnprotectedMethodHasNoToken(t *testing.T) {
	c := newTestClient(&fakeAPI{}, WithTokens(models.Tokens{AccessToken: "a1"}))

	err := c.accessTokenInterceptor(context.Background(), pb.SessionService_Authenticate_FullMethodName, nil, nil, nil,
		func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			assert.Empty(t, tokenFrom(ctx))
			return nil
		})
	require.NoError(t, err)
}

func TestInterceptor_RotatesOnceAndRetries(t *testing.T) {
	f := &fakeAPI{rotateResp: &pb.RotateResponse{Tokens: &pb.Tokens{AccessToken: "a2", RefreshToken: "r2"}}}
	c := newTestClient(f, WithTokens(models.Tokens{AccessToken: "a1", RefreshToken: "r1"}))

	var seen []string
	err := c.accessTokenInterceptor(context.Background(), pb.SessionService_WhoAmI_FullMethodName, nil, nil, nil,
		func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			tok := tokenFrom(ctx)
			seen = append(seen, tok)
			if tok == "a1" {
				return status.Error(codes.Unauthenticated, "unauthorized")
			}
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, []string{"a1", "a2"}, seen)
	assert.Equal(t, "r1", f.lastRotateReq.GetRefreshToken())
	assert.Equal(t, "r2", c.Tokens().RefreshToken)
}

func TestInterceptor_RotationFailureIsReturned(t *testing.T) {
	f := &fakeAPI{rotateErr: status.Error(codes.Unauthenticated, "invalid refresh token")}
	c := newTestClient(f, WithTokens(models.Tokens{AccessToken: "a1", RefreshToken: "r1"}))

	calls := 0
	err := c.accessTokenInterceptor(context.Background(), pb.SessionService_Logout_FullMethodName, nil, nil, nil,
		func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			calls++
			return status.Error(codes.Unauthenticated, "unauthorized")
		})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls)
}

func TestInterceptor_OtherErrorsPassThrough(t *testing.T) {
	f := &fakeAPI{}
	c := newTestClient(f, WithTokens(models.Tokens{AccessToken: "a1", RefreshToken: "r1"}))

	want := status.Error(codes.Internal, "internal error")
	err := c.accessTokenInterceptor(context.Background(), pb.SessionService_WhoAmI_FullMethodName, nil, nil, nil,
		func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			return want
		})

	assert.Equal(t, want, err)
	assert.Nil(t, f.lastRotateReq)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "invalid credentials"), ErrUnauthorized},
		{"session expired", status.Error(codes.Unauthenticated, "session expired: re-authenticate"), ErrSessionExpired},
		{"already exists", status.Error(codes.AlreadyExists, "x"), ErrAlreadyRegistered},
		{"invalid argument", status.Error(codes.InvalidArgument, "invalid input: bad"), ErrInvalidArgument},
		{"rate limited", status.Error(codes.ResourceExhausted, "x"), ErrRateLimited},
		{"unavailable", status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "x"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(tt.in), tt.want)
		})
	}

	plain := errors.New("boom")
	assert.Equal(t, plain, c.mapError(plain))
	assert.NoError(t, c.mapError(nil))
}
