package dto

import (
	"strings"
)

// LoginRequest represents the admin login form.
// Name and phone are accepted as arbitrary non-empty strings; the booking
// backend owns the actual authorization policy.
type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// Validate checks the request beyond binding (whitespace-only fields)
func (r *LoginRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		return false, "Phone is required"
	}
	return true, ""
}

// ForgetPasswordRequest starts the OTP reset flow
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest verifies a one-time password
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest completes the OTP reset flow
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePasswordRequest changes the admin password via settings
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// SessionResponse is the route-guard view of the current session.
// Tokens are deliberately absent.
type SessionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expiresAt"`
}
