package service

import (
	"context"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
)

// PitchPage is the backend's paginated pitches payload
type PitchPage struct {
	Pitches    []*domain.Pitch `json:"pitches"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"totalPages"`
}

// PitchAnalytics is the backend's per-pitch analytics payload
type PitchAnalytics struct {
	Bookings  int     `json:"bookings"`
	Revenue   float64 `json:"revenue"`
	Rating    float64 `json:"rating"`
	NoShows   int     `json:"noShows,omitempty"`
	Occupancy float64 `json:"occupancy,omitempty"`
}

// ListPitches lists pitches with pagination and filters
func (c *Console) ListPitches(ctx context.Context, sid string, q dto.PageQuery) (*PitchPage, error) {
	var page PitchPage
	if err := c.get(ctx, sid, "/admin/pitches", q.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPitch fetches a single pitch
func (c *Console) GetPitch(ctx context.Context, sid, id string) (*domain.Pitch, error) {
	var pitch domain.Pitch
	if err := c.get(ctx, sid, "/admin/pitches/"+id, nil, &pitch); err != nil {
		return nil, err
	}
	return &pitch, nil
}

// CreatePitch registers a new pitch
func (c *Console) CreatePitch(ctx context.Context, sid string, req dto.PitchRequest) (*domain.Pitch, error) {
	var pitch domain.Pitch
	if err := c.post(ctx, sid, "/admin/pitches", req, &pitch); err != nil {
		return nil, err
	}
	return &pitch, nil
}

// UpdatePitch applies a partial pitch update
func (c *Console) UpdatePitch(ctx context.Context, sid, id string, req dto.PitchRequest) error {
	return c.patch(ctx, sid, "/admin/pitches/"+id, req, nil)
}

// UpdatePitchStatus changes a pitch's status
func (c *Console) UpdatePitchStatus(ctx context.Context, sid, id, status string) error {
	return c.patch(ctx, sid, "/admin/pitches/"+id+"/status", dto.StatusRequest{Status: status}, nil)
}

// DeletePitch removes a pitch
func (c *Console) DeletePitch(ctx context.Context, sid, id string) error {
	return c.delete(ctx, sid, "/admin/pitches/"+id)
}

// GetPitchAnalytics fetches a pitch's analytics block
func (c *Console) GetPitchAnalytics(ctx context.Context, sid, id string) (*PitchAnalytics, error) {
	var analytics PitchAnalytics
	if err := c.get(ctx, sid, "/admin/pitches/"+id+"/analytics", nil, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
