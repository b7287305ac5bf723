package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// DashboardHandler handles dashboard widget HTTP requests
type DashboardHandler struct {
	console *service.Console
	codec   *middleware.CookieCodec
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(console *service.Console, codec *middleware.CookieCodec) *DashboardHandler {
	return &DashboardHandler{console: console, codec: codec}
}

// Stats handles GET /admin/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.console.GetDashboardStats(reqCtx(c), middleware.SessionID(c))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, stats)
}

// BookingTrend handles GET /admin/dashboard/booking-trend?days=7
func (h *DashboardHandler) BookingTrend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	trend, err := h.console.GetBookingTrend(reqCtx(c), middleware.SessionID(c), days)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, trend)
}

// TopPitches handles GET /admin/dashboard/top-pitches?limit=5
func (h *DashboardHandler) TopPitches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	top, err := h.console.GetTopPitches(reqCtx(c), middleware.SessionID(c), limit)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, top)
}

// RecentBookings handles GET /admin/dashboard/recent-bookings?limit=5
func (h *DashboardHandler) RecentBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	recent, err := h.console.GetRecentBookings(reqCtx(c), middleware.SessionID(c), limit)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, recent)
}

// RevenueReport handles GET /admin/reports/revenue?period=30d
func (h *DashboardHandler) RevenueReport(c *gin.Context) {
	report, err := h.console.GetRevenueReport(reqCtx(c), middleware.SessionID(c), c.Query("period"))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, report)
}
