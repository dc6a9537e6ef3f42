package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

// Context keys populated by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// RoleFromContext returns the acting user's role, defaulting to viewer when
// the auth middleware did not run.
func RoleFromContext(c *gin.Context) Role {
	return ParseRole(c.GetString(ContextKeyUserRole))
}

// UserIDFromContext returns the acting user's ID, or 0 when unauthenticated.
func UserIDFromContext(c *gin.Context) uint {
	if v, exists := c.Get(ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// RequireAgent aborts with 403 unless the actor holds the agent or admin role.
func RequireAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).CanManageRequests() {
			utils.ErrorResponse(c, http.StatusForbidden, "agent or admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the actor holds the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !RoleFromContext(c).IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
