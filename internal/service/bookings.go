package service

import (
	"context"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
)

// BookingPage is the backend's paginated bookings payload
type BookingPage struct {
	Bookings   []*domain.Booking `json:"bookings"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// ListBookings lists bookings with pagination and filters
func (c *Console) ListBookings(ctx context.Context, sid string, q dto.PageQuery) (*BookingPage, error) {
	var page BookingPage
	if err := c.get(ctx, sid, "/admin/bookings", q.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBooking fetches a single booking
func (c *Console) GetBooking(ctx context.Context, sid, id string) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.get(ctx, sid, "/admin/bookings/"+id, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus changes a booking's status
func (c *Console) UpdateBookingStatus(ctx context.Context, sid, id, status string) error {
	return c.patch(ctx, sid, "/admin/bookings/"+id+"/status", dto.StatusRequest{Status: status}, nil)
}

// CancelBooking cancels a booking with an optional reason
func (c *Console) CancelBooking(ctx context.Context, sid, id, reason string) error {
	return c.post(ctx, sid, "/admin/bookings/"+id+"/cancel", dto.ReasonRequest{Reason: reason}, nil)
}

// ConfirmBooking confirms a pending booking
func (c *Console) ConfirmBooking(ctx context.Context, sid, id string) error {
	return c.post(ctx, sid, "/admin/bookings/"+id+"/confirm", nil, nil)
}

// DeleteBooking removes a booking
func (c *Console) DeleteBooking(ctx context.Context, sid, id string) error {
	return c.delete(ctx, sid, "/admin/bookings/"+id)
}
