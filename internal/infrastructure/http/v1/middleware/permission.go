package middleware

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/session"
)

// RequirePermission checks that the authenticated user carries the
// given permission key. Admin users bypass permission checks.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if session.FromContext(ctx) == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if !session.HasPermission(ctx, permission) {
			_ = c.Error(
				apperror.NewForbidden("permission denied").
					WithDetail("required_permission", permission),
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
