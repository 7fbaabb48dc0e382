package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campuscore/registrar/internal/app/models/dto"
	"github.com/campuscore/registrar/internal/app/repositories"
	"github.com/campuscore/registrar/internal/pkg/apperrors"
	"github.com/campuscore/registrar/internal/pkg/auth"
)

// loginFailedMessage never distinguishes an unknown email from a wrong
// password.
const loginFailedMessage = "invalid email or password"

// authService implements AuthService on top of the user repository and the
// token codec.
type authService struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a session token. A failed credential
// check is a soft rejection with a generic message, not an error.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.NewInvalidArgumentError("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.logger.Warn().Str("email", req.Email).Msg("Login failed: unknown email")
			return &dto.LoginResponse{Success: false, Message: loginFailedMessage}, nil
		}
		return nil, apperrors.NewInternalError("failed to look up user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Int64("userId", user.ID).Msg("Login failed: wrong password")
		return &dto.LoginResponse{Success: false, Message: loginFailedMessage}, nil
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to issue token", err)
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("Login successful")

	return &dto.LoginResponse{
		Success:   true,
		Message:   "login successful",
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User: &dto.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		},
	}, nil
}

// Logout acknowledges the request. No server-side session exists, so a token
// cannot be revoked before its expiry; clients discard it.
func (s *authService) Logout(ctx context.Context, token string) (*dto.OutcomeResponse, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.NewInvalidArgumentError("token is required")
	}

	s.logger.Info().Msg("Logout acknowledged")
	return &dto.OutcomeResponse{Success: true, Message: "logged out successfully"}, nil
}

// ValidateToken verifies signature and expiry. Any malformed, expired or
// tampered token yields valid false rather than an error; invalid tokens are
// an expected, frequent condition.
func (s *authService) ValidateToken(ctx context.Context, token string) (*dto.ValidateTokenResponse, error) {
	claims, err := s.jwtService.ValidateAndExtractClaims(token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Token validation failed")
		return &dto.ValidateTokenResponse{Valid: false}, nil
	}

	// Resolve the subject so the response carries the current display name
	// and a token for a deleted user reads as invalid.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return &dto.ValidateTokenResponse{Valid: false}, nil
		}
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to resolve token subject %d", claims.UserID), err)
	}

	return &dto.ValidateTokenResponse{
		Valid: true,
		User: &dto.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		},
	}, nil
}
