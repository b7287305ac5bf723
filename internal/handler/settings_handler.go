package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// SettingsHandler handles platform settings HTTP requests
type SettingsHandler struct {
	console *service.Console
	codec   *middleware.CookieCodec
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(console *service.Console, codec *middleware.CookieCodec) *SettingsHandler {
	return &SettingsHandler{console: console, codec: codec}
}

// Get handles GET /admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.console.GetSettings(reqCtx(c), middleware.SessionID(c))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, settings)
}

// Update handles PATCH /admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.console.UpdateSettings(reqCtx(c), middleware.SessionID(c), req); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// GetPlatformFee handles GET /admin/settings/platform-fee
func (h *SettingsHandler) GetPlatformFee(c *gin.Context) {
	fee, err := h.console.GetPlatformFee(reqCtx(c), middleware.SessionID(c))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, fee)
}

// UpdatePlatformFee handles PATCH /admin/settings/platform-fee
func (h *SettingsHandler) UpdatePlatformFee(c *gin.Context) {
	var req dto.PlatformFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Fee is required")
		return
	}
	if req.Fee < 0 || req.Fee > 100 {
		response.BadRequest(c, "Fee must be between 0 and 100")
		return
	}
	if err := h.console.UpdatePlatformFee(reqCtx(c), middleware.SessionID(c), req.Fee); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// SystemStatus handles GET /admin/settings/system-status
func (h *SettingsHandler) SystemStatus(c *gin.Context) {
	status, err := h.console.GetSystemStatus(reqCtx(c), middleware.SessionID(c))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, status)
}

// ChangePassword handles POST /admin/settings/change-password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Old and new passwords are required, new password at least 8 characters")
		return
	}
	if err := h.console.ChangeAdminPassword(reqCtx(c), middleware.SessionID(c), req); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"changed": true})
}
