package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// EmergencyHandler handles emergency control HTTP requests
type EmergencyHandler struct {
	console *service.Console
	codec   *middleware.CookieCodec
	logger  *zap.Logger
}

// NewEmergencyHandler creates a new EmergencyHandler
func NewEmergencyHandler(console *service.Console, codec *middleware.CookieCodec, logger *zap.Logger) *EmergencyHandler {
	return &EmergencyHandler{console: console, codec: codec, logger: logger}
}

// LockSystem handles POST /admin/emergency/lock-system
func (h *EmergencyHandler) LockSystem(c *gin.Context) {
	var req dto.ReasonRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.console.LockSystem(reqCtx(c), middleware.SessionID(c), req.Reason); err != nil {
		writeError(c, h.codec, err)
		return
	}
	// Lock actions are audited
	h.logger.Warn("platform locked",
		zap.String("admin_id", c.GetString(middleware.ContextKeyUserID)),
		zap.String("reason", req.Reason),
	)
	response.Success(c, gin.H{"locked": true})
}

// UnlockSystem handles POST /admin/emergency/unlock-system
func (h *EmergencyHandler) UnlockSystem(c *gin.Context) {
	if err := h.console.UnlockSystem(reqCtx(c), middleware.SessionID(c)); err != nil {
		writeError(c, h.codec, err)
		return
	}
	h.logger.Warn("platform unlocked",
		zap.String("admin_id", c.GetString(middleware.ContextKeyUserID)),
	)
	response.Success(c, gin.H{"locked": false})
}

// LockStatus handles GET /admin/emergency/lock-status
func (h *EmergencyHandler) LockStatus(c *gin.Context) {
	status, err := h.console.GetLockStatus(reqCtx(c), middleware.SessionID(c))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, status)
}

// SendNotification handles POST /admin/emergency/notification
func (h *EmergencyHandler) SendNotification(c *gin.Context) {
	var req dto.NotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Message is required")
		return
	}
	if err := h.console.SendMassNotification(reqCtx(c), middleware.SessionID(c), req); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"sent": true})
}

// NotificationHistory handles GET /admin/emergency/notifications
func (h *EmergencyHandler) NotificationHistory(c *gin.Context) {
	q := pageQuery(c)
	page, err := h.console.GetNotificationHistory(reqCtx(c), middleware.SessionID(c), q)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Paginated(c, page.Notifications, response.PageMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}
