package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/upstream"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// AuthHandler handles session lifecycle HTTP requests
type AuthHandler struct {
	authority *service.Authority
	upstream  *upstream.Client
	codec     *middleware.CookieCodec
	logger    *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authority *service.Authority, up *upstream.Client, codec *middleware.CookieCodec, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authority: authority,
		upstream:  up,
		codec:     codec,
		logger:    logger,
	}
}

// Login handles POST /auth/login - exchanges credentials for a session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name and phone are required")
		return
	}

	session, err := h.authority.Login(reqCtx(c), &req)
	if err != nil {
		writeError(c, nil, err)
		return
	}

	cookie, err := h.codec.Issue(session.ID)
	if err != nil {
		h.logger.Error("failed to issue session cookie", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	h.codec.Set(c, cookie)

	response.Success(c, dto.SessionResponse{
		ID:        session.Identity.ID,
		Name:      session.Identity.Name,
		Phone:     session.Identity.Phone,
		Role:      string(session.Identity.Role),
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout handles POST /auth/logout - always clears the cookie, even when
// no session exists server-side
func (h *AuthHandler) Logout(c *gin.Context) {
	if value, err := c.Cookie(h.codec.Name()); err == nil && value != "" {
		if sessionID, err := h.codec.Parse(value); err == nil {
			if err := h.authority.Logout(reqCtx(c), sessionID); err != nil {
				h.logger.Warn("logout cleanup failed", zap.Error(err))
			}
		}
	}
	h.codec.Clear(c)
	response.Success(c, gin.H{"loggedOut": true})
}

// Session handles GET /auth/session - the route-guard probe. Runs behind
// the session guard, so the session is already resolved.
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := h.authority.Resolve(reqCtx(c), middleware.SessionID(c))
	if err != nil {
		h.codec.Clear(c)
		response.SessionExpired(c)
		return
	}
	response.Success(c, dto.SessionResponse{
		ID:        session.Identity.ID,
		Name:      session.Identity.Name,
		Phone:     session.Identity.Phone,
		Role:      string(session.Identity.Role),
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// ForgetPassword handles POST /auth/forget-password
func (h *AuthHandler) ForgetPassword(c *gin.Context) {
	var req dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "A valid email is required")
		return
	}
	if err := h.upstream.ForgetPassword(reqCtx(c), req.Email); err != nil {
		writeError(c, nil, err)
		return
	}
	response.Success(c, gin.H{"sent": true})
}

// VerifyOTP handles POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and OTP are required")
		return
	}
	if err := h.upstream.VerifyOTP(reqCtx(c), req.Email, req.OTP); err != nil {
		writeError(c, nil, err)
		return
	}
	response.Success(c, gin.H{"verified": true})
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email, OTP and a new password of at least 8 characters are required")
		return
	}
	if err := h.upstream.ResetPassword(reqCtx(c), req.Email, req.OTP, req.NewPassword); err != nil {
		writeError(c, nil, err)
		return
	}
	response.Success(c, gin.H{"reset": true})
}
