package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/deckhub-server/internal/api/grpc/proto"
	"github.com/dtroode/deckhub-server/internal/logger"
	"github.com/dtroode/deckhub-server/internal/model"
)

// AuthService defines account and session operations.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (model.Identity, model.TokenPair, error)
	Login(ctx context.Context, email, password string) (model.Identity, model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	proto.UnimplementedAuthServer
	authService AuthService
	logger      *logger.Logger
}

var _ proto.AuthServer = (*Auth)(nil)

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates an account and returns a session.
func (h *Auth) Register(ctx context.Context, req *proto.RegisterRequest) (*proto.SessionResponse, error) {
	h.logger.Debug("Auth handler: processing registration request", "email", req.Email)

	identity, tokens, err := h.authService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: registration completed", "userID", identity.UserID)

	return sessionResponse(identity, tokens), nil
}

// Login verifies credentials and returns a session.
func (h *Auth) Login(ctx context.Context, req *proto.LoginRequest) (*proto.SessionResponse, error) {
	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	identity, tokens, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed", "userID", identity.UserID)

	return sessionResponse(identity, tokens), nil
}

// Refresh exchanges a refresh token for a new token pair.
func (h *Auth) Refresh(ctx context.Context, req *proto.RefreshRequest) (*proto.RefreshResponse, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	tokens, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful")

	return &proto.RefreshResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes a refresh token.
func (h *Auth) Logout(ctx context.Context, req *proto.LogoutRequest) (*proto.Empty, error) {
	h.logger.Debug("Auth handler: processing logout request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	if err := h.authService.Logout(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: logout failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: logout successful")

	return &proto.Empty{}, nil
}

func sessionResponse(identity model.Identity, tokens model.TokenPair) *proto.SessionResponse {
	return &proto.SessionResponse{
		User: &proto.Identity{
			UserId: identity.UserID.String(),
			Email:  identity.Email,
			Name:   identity.Name,
		},
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
}
