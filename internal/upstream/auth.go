package upstream

import (
	"context"
	"net/http"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
)

// LoginUser is the identity block of a login response
type LoginUser struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// LoginResult is the payload of POST /auth/login.
// The backend sometimes carries _id/role at the top level instead of
// inside user, so both spots are decoded.
type LoginResult struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ID           string    `json:"_id,omitempty"`
	Role         string    `json:"role,omitempty"`
	User         LoginUser `json:"user"`
}

// Identity folds the flexible payload into a session identity,
// defaulting the role to admin when the backend omits it
func (r *LoginResult) Identity() domain.Identity {
	id := r.User.ID
	if id == "" {
		id = r.ID
	}
	role := r.User.Role
	if role == "" {
		role = r.Role
	}
	if role == "" {
		role = string(domain.RoleAdmin)
	}
	return domain.Identity{
		ID:    id,
		Name:  r.User.Name,
		Phone: r.User.Phone,
		Role:  domain.Role(role),
	}
}

// RefreshResult is the payload of POST /auth/refresh-token.
// RefreshToken is only present when the backend rotates it.
type RefreshResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Login exchanges credentials for a token pair and identity
func (c *Client) Login(ctx context.Context, name, phone string) (*LoginResult, error) {
	var result LoginResult
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"name": name, "phone": phone},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Refresh exchanges a refresh token for a new access token
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	var result RefreshResult
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/refresh-token",
		Body:   map[string]string{"refreshToken": refreshToken},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the session server-side (best-effort)
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Body:   map[string]string{},
		Token:  token,
	}, nil)
}

// ForgetPassword triggers an OTP email
func (c *Client) ForgetPassword(ctx context.Context, email string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/forget",
		Body:   map[string]string{"email": email},
	}, nil)
}

// VerifyOTP verifies a one-time password
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/verify",
		Body:   map[string]string{"email": email, "otp": otp},
	}, nil)
}

// ResetPassword completes the OTP reset flow
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/reset-password",
		Body: map[string]string{
			"email":       email,
			"otp":         otp,
			"newPassword": newPassword,
		},
	}, nil)
}
