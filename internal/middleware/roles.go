package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireRoles rejects callers whose role is not listed. It must run after AuthMiddleware.
// Denials use 401 like every other permission failure of the API.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActorFromContext(c)
		if !ok || !slices.Contains(roles, actor.Role) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not allowed for route",
				slog.String("role", string(actor.Role)),
				slog.String("route", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "permission denied"})
			return
		}
		c.Next()
	}
}
