package dto

import "puntoventa/internal/domain/auth"

// LoginRequest carries credentials plus the store/register selection
// made at the start of a POS shift.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	StoreID    string `json:"storeId"`
	RegisterID string `json:"registerId"`
}

// ToCredentials converts the request to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{
		Email:      r.Email,
		Password:   r.Password,
		StoreID:    r.StoreID,
		RegisterID: r.RegisterID,
	}
}

// RegisterRequest creates a new operator account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
