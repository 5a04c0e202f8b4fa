package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time; tests may replace it.
	Now func() time.Time
}

func newBaseService() BaseService {
	return BaseService{Now: func() time.Time { return time.Now().UTC() }}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireRole fails with apperrors.ErrPermissionDenied unless the actor holds one of roles.
func (s *BaseService) RequireRole(ctx context.Context, actor domain.Actor, action string, roles ...domain.Role) error {
	if slices.Contains(roles, actor.Role) {
		return nil
	}
	s.LogInfo(ctx, "Action denied for role",
		slog.String("action", action),
		slog.String("user_id", actor.UserID),
		slog.String("role", string(actor.Role)))
	return fmt.Errorf("%w: role %q may not %s", apperrors.ErrPermissionDenied, actor.Role, action)
}

func (s *BaseService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}
