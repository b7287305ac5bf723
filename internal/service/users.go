package service

import (
	"context"
	"net/url"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
)

// UserPage is the backend's paginated users payload
type UserPage struct {
	Users      []*domain.User `json:"users"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"totalPages"`
}

// ListUsers lists platform users with pagination and filters
func (c *Console) ListUsers(ctx context.Context, sid string, q dto.PageQuery) (*UserPage, error) {
	var page UserPage
	if err := c.get(ctx, sid, "/admin/users", q.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchUsers searches users by free text
func (c *Console) SearchUsers(ctx context.Context, sid, query string) ([]*domain.User, error) {
	v := url.Values{}
	v.Set("q", query)
	var page UserPage
	if err := c.get(ctx, sid, "/admin/users/search", v, &page); err != nil {
		return nil, err
	}
	return page.Users, nil
}

// GetUser fetches a single user
func (c *Console) GetUser(ctx context.Context, sid, id string) (*domain.User, error) {
	var user domain.User
	if err := c.get(ctx, sid, "/admin/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial user update
func (c *Console) UpdateUser(ctx context.Context, sid, id string, req dto.UpdateUserRequest) error {
	return c.patch(ctx, sid, "/admin/users/"+id, req, nil)
}

// BanUser bans a user with an optional reason
func (c *Console) BanUser(ctx context.Context, sid, id, reason string) error {
	return c.post(ctx, sid, "/admin/users/"+id+"/ban", dto.ReasonRequest{Reason: reason}, nil)
}

// UnbanUser lifts a ban
func (c *Console) UnbanUser(ctx context.Context, sid, id string) error {
	return c.post(ctx, sid, "/admin/users/"+id+"/unban", nil, nil)
}

// DeleteUser removes a user account
func (c *Console) DeleteUser(ctx context.Context, sid, id string) error {
	return c.delete(ctx, sid, "/admin/users/"+id)
}
