package middleware

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// WithActor returns a copy of ctx carrying the authenticated user.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, userIDKey, actor.UserID)
	return context.WithValue(ctx, roleKey, actor.Role)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID := c.GetString(string(userIDKey)); userID != "" {
		return userID, true
	}
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetActorFromContext returns the authenticated user and role set by AuthMiddleware.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	if !ok || !role.IsValid() {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: userID, Role: role}, true
}
