package service

import (
	"context"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
)

// NotificationPage is the paginated notification history payload
type NotificationPage struct {
	Notifications []*domain.Notification `json:"notifications"`
	Total         int64                  `json:"total"`
	TotalPages    int                    `json:"totalPages"`
}

// LockSystem engages the emergency platform lock
func (c *Console) LockSystem(ctx context.Context, sid, reason string) error {
	return c.post(ctx, sid, "/admin/emergency/lock-system", dto.ReasonRequest{Reason: reason}, nil)
}

// UnlockSystem lifts the emergency platform lock
func (c *Console) UnlockSystem(ctx context.Context, sid string) error {
	return c.post(ctx, sid, "/admin/emergency/unlock-system", nil, nil)
}

// GetLockStatus reports the current platform lock state
func (c *Console) GetLockStatus(ctx context.Context, sid string) (*domain.SystemLockStatus, error) {
	var status domain.SystemLockStatus
	if err := c.get(ctx, sid, "/admin/emergency/lock-status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SendMassNotification broadcasts a message to a user segment
func (c *Console) SendMassNotification(ctx context.Context, sid string, req dto.NotificationRequest) error {
	return c.post(ctx, sid, "/admin/emergency/notification", req, nil)
}

// GetNotificationHistory lists previously sent mass notifications
func (c *Console) GetNotificationHistory(ctx context.Context, sid string, q dto.PageQuery) (*NotificationPage, error) {
	var page NotificationPage
	if err := c.get(ctx, sid, "/admin/emergency/notifications", q.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
