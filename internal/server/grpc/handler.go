package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	pb "github.com/dmitrijs2005/gophauth/internal/proto"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	view, err := s.sessions.Register(ctx, services.RegisterInput{
		Identity: req.GetIdentity(),
		Password: req.GetPassword(),
		Role:     req.GetRole(),
		Name:     req.GetName(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{Principal: toPBPrincipal(view)}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	res, err := s.sessions.Authenticate(ctx, req.GetIdentity(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AuthenticateResponse{PrincipalId: res.PrincipalID, Tokens: toPBTokens(&res.TokenPair)}, nil
}

func (s *GRPCServer) Rotate(ctx context.Context, req *pb.RotateRequest) (*pb.RotateResponse, error) {

	pair, err := s.sessions.Rotate(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RotateResponse{Tokens: toPBTokens(pair)}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	principalID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	if err := s.sessions.Logout(ctx, principalID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LogoutResponse{Ok: true}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {

	principalID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	view, err := s.sessions.Principal(ctx, principalID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, s.toStatus(ctx, err)
	}

	return &pb.WhoAmIResponse{Principal: toPBPrincipal(view)}, nil
}

// toStatus collapses domain errors into status codes. Messages within a
// class are fixed so callers cannot tell which check failed.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateIdentity):
		return status.Error(codes.AlreadyExists, common.ErrDuplicateIdentity.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrInvalidRefreshToken):
		return status.Error(codes.Unauthenticated, common.ErrInvalidRefreshToken.Error())
	case errors.Is(err, common.ErrSessionExpired):
		return status.Error(codes.Unauthenticated, common.ErrSessionExpired.Error())
	case common.IsAccessTokenError(err):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func toPBPrincipal(v *models.PrincipalView) *pb.Principal {
	return &pb.Principal{
		Id:        v.ID,
		Email:     v.Email,
		Role:      v.Role.String(),
		Name:      v.Name,
		CreatedAt: timestamppb.New(v.CreatedAt),
	}
}

func toPBTokens(p *services.TokenPair) *pb.Tokens {
	return &pb.Tokens{
		AccessToken:           p.AccessToken,
		AccessTokenExpiresAt:  timestamppb.New(p.AccessTokenExpiresAt),
		RefreshToken:          p.RefreshToken,
		RefreshTokenExpiresAt: timestamppb.New(p.RefreshTokenExpiresAt),
	}
}
