package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/offering_tracker/internal/core/ports/services"
	"github.com/SscSPs/offering_tracker/internal/dto"
	"github.com/SscSPs/offering_tracker/internal/platform/config"
	"github.com/SscSPs/offering_tracker/internal/utils"
)

// adminSubject is the token subject of the single administrator account.
const adminSubject = "admin"

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	passwordHash string
	jwtSecret    string
	jwtIssuer    string
	jwtExpiry    time.Duration
}

// NewAuthService creates the login service. A plain ADMIN_PASSWORD is hashed once here.
func NewAuthService(cfg *config.Config, opts ...Option) (portssvc.AuthSvcFacade, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" && cfg.AdminPassword != "" {
		var err error
		hash, err = utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	}
	return &authService{
		BaseService:  newBaseService(opts...),
		passwordHash: hash,
		jwtSecret:    cfg.JWTSecret,
		jwtIssuer:    cfg.JWTIssuer,
		jwtExpiry:    cfg.JWTExpiryDuration,
	}, nil
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if s.passwordHash == "" || !utils.CheckPasswordHash(req.Password, s.passwordHash) {
		s.LogWarn(ctx, apperrors.ErrUnauthorized, "Login rejected")
		return nil, apperrors.ErrUnauthorized
	}

	token, err := utils.GenerateJWT(adminSubject, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign JWT token")
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.LogInfo(ctx, "Administrator logged in", slog.Duration("expires_in", s.jwtExpiry))
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.jwtExpiry.Seconds()),
	}, nil
}
