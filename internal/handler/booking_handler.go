package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// BookingHandler handles booking management HTTP requests
type BookingHandler struct {
	console *service.Console
	codec   *middleware.CookieCodec
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(console *service.Console, codec *middleware.CookieCodec) *BookingHandler {
	return &BookingHandler{console: console, codec: codec}
}

// List handles GET /admin/bookings
func (h *BookingHandler) List(c *gin.Context) {
	q := pageQuery(c, "status", "search", "pitchId", "date")
	page, err := h.console.ListBookings(reqCtx(c), middleware.SessionID(c), q)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Paginated(c, page.Bookings, response.PageMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

// Get handles GET /admin/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.console.GetBooking(reqCtx(c), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, booking)
}

// UpdateStatus handles PATCH /admin/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}
	if err := h.console.UpdateBookingStatus(reqCtx(c), middleware.SessionID(c), c.Param("id"), req.Status); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// Cancel handles POST /admin/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req dto.ReasonRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.console.CancelBooking(reqCtx(c), middleware.SessionID(c), c.Param("id"), req.Reason); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"cancelled": true})
}

// Confirm handles POST /admin/bookings/:id/confirm
func (h *BookingHandler) Confirm(c *gin.Context) {
	if err := h.console.ConfirmBooking(reqCtx(c), middleware.SessionID(c), c.Param("id")); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"confirmed": true})
}

// Delete handles DELETE /admin/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.console.DeleteBooking(reqCtx(c), middleware.SessionID(c), c.Param("id")); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
