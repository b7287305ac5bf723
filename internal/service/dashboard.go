package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
)

// BookingTrend is the booking trend chart payload
type BookingTrend struct {
	Trend []domain.BookingTrendPoint `json:"trend"`
}

// TopPitches is the top-pitches widget payload
type TopPitches struct {
	Pitches []domain.TopPitch `json:"pitches"`
}

// RecentBookings is the recent-bookings widget payload
type RecentBookings struct {
	Bookings []*domain.Booking `json:"bookings"`
}

// GetDashboardStats fetches the dashboard headline block
func (c *Console) GetDashboardStats(ctx context.Context, sid string) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, sid, "/admin/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetBookingTrend fetches the booking trend for the last N days
func (c *Console) GetBookingTrend(ctx context.Context, sid string, days int) (*BookingTrend, error) {
	if days <= 0 {
		days = 7
	}
	v := url.Values{}
	v.Set("days", strconv.Itoa(days))

	var trend BookingTrend
	if err := c.get(ctx, sid, "/admin/dashboard/booking-trend", v, &trend); err != nil {
		return nil, err
	}
	return &trend, nil
}

// GetTopPitches fetches the best performing pitches
func (c *Console) GetTopPitches(ctx context.Context, sid string, limit int) (*TopPitches, error) {
	if limit <= 0 {
		limit = 5
	}
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))

	var top TopPitches
	if err := c.get(ctx, sid, "/admin/dashboard/top-pitches", v, &top); err != nil {
		return nil, err
	}
	return &top, nil
}

// GetRecentBookings fetches the latest bookings
func (c *Console) GetRecentBookings(ctx context.Context, sid string, limit int) (*RecentBookings, error) {
	if limit <= 0 {
		limit = 5
	}
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))

	var recent RecentBookings
	if err := c.get(ctx, sid, "/admin/dashboard/recent-bookings", v, &recent); err != nil {
		return nil, err
	}
	return &recent, nil
}

// GetRevenueReport fetches the revenue report for a period (e.g. "30d")
func (c *Console) GetRevenueReport(ctx context.Context, sid, period string) (*domain.RevenueReport, error) {
	v := url.Values{}
	if period != "" {
		v.Set("period", period)
	}

	var report domain.RevenueReport
	if err := c.get(ctx, sid, "/admin/reports/revenue", v, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
