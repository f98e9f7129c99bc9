// Package session provides the request-scoped operator session.
// The session is an explicit object carried through context.Context;
// components that need an identity (audit, credit checks, submissions)
// receive it from here instead of reading ambient globals.
package session

import (
	"context"
)

// Session contains the authenticated operator's identity and the
// store/register selection made at the start of a POS session.
type Session struct {
	UserID      string
	Email       string
	Roles       []string
	Permissions []string
	IsAdmin     bool

	// StoreID / RegisterID are set once the operator picks a store and
	// register (tienda/caja); documents created in this session are
	// scoped to them.
	StoreID    string
	RegisterID string
}

type sessionKey struct{}

// WithSession adds a Session to context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the Session from context, or nil.
func FromContext(ctx context.Context) *Session {
	if v, ok := ctx.Value(sessionKey{}).(*Session); ok {
		return v
	}
	return nil
}

// UserID returns the operator's user ID from context or empty string.
func UserID(ctx context.Context) string {
	if s := FromContext(ctx); s != nil {
		return s.UserID
	}
	return ""
}

// HasRole checks if the session user has a specific role.
func HasRole(ctx context.Context, role string) bool {
	s := FromContext(ctx)
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasPermission checks if the session user carries a permission key.
// Admins implicitly hold every permission.
func HasPermission(ctx context.Context, perm string) bool {
	s := FromContext(ctx)
	if s == nil {
		return false
	}
	if s.IsAdmin {
		return true
	}
	for _, p := range s.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
