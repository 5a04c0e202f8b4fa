package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/platform/config"
	"github.com/SscSPs/adaptation_plan_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{BaseService: newBaseService(), cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token carrying the user's role.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}
