package service

import (
	"context"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
)

// OwnerPage is the backend's paginated pitch-owners payload
type OwnerPage struct {
	Owners     []*domain.PitchOwner `json:"owners"`
	Total      int64                `json:"total"`
	TotalPages int                  `json:"totalPages"`
}

// ListOwners lists pitch owners with pagination and filters
func (c *Console) ListOwners(ctx context.Context, sid string, q dto.PageQuery) (*OwnerPage, error) {
	var page OwnerPage
	if err := c.get(ctx, sid, "/admin/pitch-owners", q.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOwner fetches a single pitch owner
func (c *Console) GetOwner(ctx context.Context, sid, id string) (*domain.PitchOwner, error) {
	var owner domain.PitchOwner
	if err := c.get(ctx, sid, "/admin/pitch-owners/"+id, nil, &owner); err != nil {
		return nil, err
	}
	return &owner, nil
}

// VerifyOwner approves a pending owner
func (c *Console) VerifyOwner(ctx context.Context, sid, id string) error {
	return c.post(ctx, sid, "/admin/pitch-owners/"+id+"/verify", nil, nil)
}

// RejectOwner rejects a pending owner with an optional reason
func (c *Console) RejectOwner(ctx context.Context, sid, id, reason string) error {
	return c.post(ctx, sid, "/admin/pitch-owners/"+id+"/reject", dto.ReasonRequest{Reason: reason}, nil)
}

// SuspendOwner suspends an owner with an optional reason
func (c *Console) SuspendOwner(ctx context.Context, sid, id, reason string) error {
	return c.post(ctx, sid, "/admin/pitch-owners/"+id+"/suspend", dto.ReasonRequest{Reason: reason}, nil)
}

// GetOwnerStats fetches an owner's performance aggregate
func (c *Console) GetOwnerStats(ctx context.Context, sid, id string) (*domain.OwnerStats, error) {
	var stats domain.OwnerStats
	if err := c.get(ctx, sid, "/admin/pitch-owners/"+id+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
