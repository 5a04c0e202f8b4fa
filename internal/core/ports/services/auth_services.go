package services

import (
	"context"
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for access token management.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT carrying the user's ID and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
