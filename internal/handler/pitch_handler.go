package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// PitchHandler handles pitch management HTTP requests
type PitchHandler struct {
	console *service.Console
	codec   *middleware.CookieCodec
}

// NewPitchHandler creates a new PitchHandler
func NewPitchHandler(console *service.Console, codec *middleware.CookieCodec) *PitchHandler {
	return &PitchHandler{console: console, codec: codec}
}

// List handles GET /admin/pitches
func (h *PitchHandler) List(c *gin.Context) {
	q := pageQuery(c, "status", "search", "city", "sport")
	page, err := h.console.ListPitches(reqCtx(c), middleware.SessionID(c), q)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Paginated(c, page.Pitches, response.PageMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

// Get handles GET /admin/pitches/:id
func (h *PitchHandler) Get(c *gin.Context) {
	pitch, err := h.console.GetPitch(reqCtx(c), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, pitch)
}

// Create handles POST /admin/pitches
func (h *PitchHandler) Create(c *gin.Context) {
	var req dto.PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	pitch, err := h.console.CreatePitch(reqCtx(c), middleware.SessionID(c), req)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Created(c, pitch)
}

// Update handles PATCH /admin/pitches/:id
func (h *PitchHandler) Update(c *gin.Context) {
	var req dto.PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.console.UpdatePitch(reqCtx(c), middleware.SessionID(c), c.Param("id"), req); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// UpdateStatus handles PATCH /admin/pitches/:id/status
func (h *PitchHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}
	if err := h.console.UpdatePitchStatus(reqCtx(c), middleware.SessionID(c), c.Param("id"), req.Status); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// Delete handles DELETE /admin/pitches/:id
func (h *PitchHandler) Delete(c *gin.Context) {
	if err := h.console.DeletePitch(reqCtx(c), middleware.SessionID(c), c.Param("id")); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// Analytics handles GET /admin/pitches/:id/analytics
func (h *PitchHandler) Analytics(c *gin.Context) {
	analytics, err := h.console.GetPitchAnalytics(reqCtx(c), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, analytics)
}
