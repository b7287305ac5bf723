package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// OwnerHandler handles pitch-owner management HTTP requests
type OwnerHandler struct {
	console *service.Console
	codec   *middleware.CookieCodec
}

// NewOwnerHandler creates a new OwnerHandler
func NewOwnerHandler(console *service.Console, codec *middleware.CookieCodec) *OwnerHandler {
	return &OwnerHandler{console: console, codec: codec}
}

// List handles GET /admin/pitch-owners
func (h *OwnerHandler) List(c *gin.Context) {
	q := pageQuery(c, "status", "search", "city")
	page, err := h.console.ListOwners(reqCtx(c), middleware.SessionID(c), q)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Paginated(c, page.Owners, response.PageMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

// Get handles GET /admin/pitch-owners/:id
func (h *OwnerHandler) Get(c *gin.Context) {
	owner, err := h.console.GetOwner(reqCtx(c), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, owner)
}

// Verify handles POST /admin/pitch-owners/:id/verify
func (h *OwnerHandler) Verify(c *gin.Context) {
	if err := h.console.VerifyOwner(reqCtx(c), middleware.SessionID(c), c.Param("id")); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"verified": true})
}

// Reject handles POST /admin/pitch-owners/:id/reject
func (h *OwnerHandler) Reject(c *gin.Context) {
	var req dto.ReasonRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.console.RejectOwner(reqCtx(c), middleware.SessionID(c), c.Param("id"), req.Reason); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"rejected": true})
}

// Suspend handles POST /admin/pitch-owners/:id/suspend
func (h *OwnerHandler) Suspend(c *gin.Context) {
	var req dto.ReasonRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.console.SuspendOwner(reqCtx(c), middleware.SessionID(c), c.Param("id"), req.Reason); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"suspended": true})
}

// Stats handles GET /admin/pitch-owners/:id/stats
func (h *OwnerHandler) Stats(c *gin.Context) {
	stats, err := h.console.GetOwnerStats(reqCtx(c), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, stats)
}
