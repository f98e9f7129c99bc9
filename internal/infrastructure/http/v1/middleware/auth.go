package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/session"
)

// JWTValidator validates an access token and returns the session it carries.
type JWTValidator interface {
	ValidateToken(token string) (*session.Session, error)
}

// Auth middleware validates the Bearer token and injects the session
// into the request context.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		sess, err := validator.ValidateToken(token)
		if err != nil {
			_ = c.Error(apperror.NewUnauthorized("invalid or expired token").WithCause(err))
			c.Abort()
			return
		}

		ctx := session.WithSession(c.Request.Context(), sess)
		c.Request = c.Request.WithContext(ctx)

		c.Set("user_id", sess.UserID)
		c.Set("user_email", sess.Email)

		c.Next()
	}
}

// OptionalAuth injects the session when a valid token is present but
// lets anonymous requests through.
func OptionalAuth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c)
		if err != nil {
			c.Next()
			return
		}

		sess, err := validator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		ctx := session.WithSession(c.Request.Context(), sess)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole checks that the authenticated user has the given role.
// Admins pass any role check.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sess := session.FromContext(ctx)
		if sess == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		if !sess.IsAdmin && !session.HasRole(ctx, role) {
			_ = c.Error(apperror.NewForbidden("role '" + role + "' required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", apperror.NewUnauthorized("authorization header missing")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperror.NewUnauthorized("invalid authorization header format")
	}

	if parts[1] == "" {
		return "", apperror.NewUnauthorized("token is empty")
	}
	return parts[1], nil
}
