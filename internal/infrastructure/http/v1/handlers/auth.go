package handlers

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/apperror"
	"puntoventa/internal/core/id"
	"puntoventa/internal/core/session"
	"puntoventa/internal/domain/auth"
	"puntoventa/internal/infrastructure/http/v1/dto"
	"puntoventa/internal/infrastructure/http/v1/middleware"
)

// AuthHandler serves login, registration and account operations.
type AuthHandler struct {
	BaseHandler

	service *auth.Service
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes wires auth endpoints. Login is public; the rest
// require a valid token, and account creation is admin-only.
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/auth/login", h.Login)

	protected.GET("/auth/me", h.Me)
	protected.POST("/auth/change-password", h.ChangePassword)
	protected.POST("/auth/register", middleware.RequireRole("admin"), h.Register)
	protected.GET("/roles", middleware.RequireRole("admin"), h.Roles)
	protected.GET("/permissions", middleware.RequireRole("admin"), h.Permissions)
}

// Roles handles GET /roles with the role-permission mapping.
func (h *AuthHandler) Roles(c *gin.Context) {
	h.OK(c, gin.H{"roles": auth.RoleGrants()})
}

// Permissions handles GET /permissions listing every guarded permission.
func (h *AuthHandler) Permissions(c *gin.Context) {
	h.OK(c, gin.H{"permissions": auth.AllPermissions()})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}

// Register handles POST /auth/register (admin only).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

// Me handles GET /auth/me: the authenticated operator's session.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := session.FromContext(c.Request.Context())
	if sess == nil {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return
	}

	h.OK(c, gin.H{
		"userId":      sess.UserID,
		"email":       sess.Email,
		"roles":       sess.Roles,
		"permissions": sess.Permissions,
		"isAdmin":     sess.IsAdmin,
		"storeId":     sess.StoreID,
		"registerId":  sess.RegisterID,
	})
}

// ChangePassword handles POST /auth/change-password for the caller.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	sess := session.FromContext(c.Request.Context())
	if sess == nil {
		h.Error(c, apperror.NewUnauthorized("authentication required"))
		return
	}

	userID, err := id.Parse(sess.UserID)
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("invalid session"))
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "password changed")
}
