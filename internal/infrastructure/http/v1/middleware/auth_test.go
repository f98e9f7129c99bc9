package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"puntoventa/internal/core/session"
)

type stubValidator struct {
	sess *session.Session
	err  error
}

func (v stubValidator) ValidateToken(string) (*session.Session, error) {
	return v.sess, v.err
}

func authTestRouter(validator JWTValidator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(), Auth(validator))
	r.Use(extra...)
	r.GET("/ping", func(c *gin.Context) {
		sess := session.FromContext(c.Request.Context())
		if sess == nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": sess.UserID})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	sess := &session.Session{UserID: "u-1", Email: "cajero@tienda.mx"}
	w := doGet(t, authTestRouter(stubValidator{sess: sess}), "Bearer token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestAuth_BearerIsCaseInsensitive(t *testing.T) {
	sess := &session.Session{UserID: "u-1"}
	w := doGet(t, authTestRouter(stubValidator{sess: sess}), "bearer token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	w := doGet(t, authTestRouter(stubValidator{}), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"token-only", "Basic abc", "Bearer "} {
		w := doGet(t, authTestRouter(stubValidator{}), header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	w := doGet(t, authTestRouter(stubValidator{err: errors.New("expired")}), "Bearer bad")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		sess *session.Session
		want int
	}{
		{
			name: "role present",
			sess: &session.Session{UserID: "u-1", Roles: []string{"supervisor"}},
			want: http.StatusOK,
		},
		{
			name: "admin passes any role",
			sess: &session.Session{UserID: "u-1", IsAdmin: true},
			want: http.StatusOK,
		},
		{
			name: "role missing",
			sess: &session.Session{UserID: "u-1", Roles: []string{"cajero"}},
			want: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authTestRouter(stubValidator{sess: tt.sess}, RequireRole("supervisor"))
			w := doGet(t, r, "Bearer token")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name string
		sess *session.Session
		want int
	}{
		{
			name: "permission granted",
			sess: &session.Session{UserID: "u-1", Permissions: []string{"document:sale:create"}},
			want: http.StatusOK,
		},
		{
			name: "admin implicit",
			sess: &session.Session{UserID: "u-1", IsAdmin: true},
			want: http.StatusOK,
		},
		{
			name: "permission missing",
			sess: &session.Session{UserID: "u-1", Permissions: []string{"catalog:product:read"}},
			want: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authTestRouter(stubValidator{sess: tt.sess}, RequirePermission("document:sale:create"))
			w := doGet(t, r, "Bearer token")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OptionalAuth(stubValidator{err: errors.New("no token")}))
	r.GET("/ping", func(c *gin.Context) {
		assert.Nil(t, session.FromContext(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
