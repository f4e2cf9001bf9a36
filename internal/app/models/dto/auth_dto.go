package dto

import "github.com/kaan/examportal/internal/app/models"

// LoginRequest carries login credentials. Length limits are enforced again in
// the validation package after case normalization.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// AuthResponse is the login/refresh payload: tokens plus the identity.
type AuthResponse struct {
	Token    TokenResponse   `json:"token"`
	Identity models.Identity `json:"identity"`
}

// RefreshTokenRequest carries the refresh token to rotate.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterUserRequest creates a regular portal account.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email,min=5,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
}

// CreateAdminRequest creates an administrator (super admin only).
type CreateAdminRequest struct {
	Email        string `json:"email" binding:"required,email,min=5,max=255"`
	Password     string `json:"password" binding:"required,min=8,max=128"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

// SetActiveRequest toggles an account's active flag.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
