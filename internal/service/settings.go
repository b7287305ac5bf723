package service

import (
	"context"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
)

// PlatformFee is the platform-fee payload
type PlatformFee struct {
	Fee float64 `json:"fee"`
}

// SystemStatus is the backend system-status payload
type SystemStatus struct {
	Healthy  bool   `json:"healthy"`
	Version  string `json:"version,omitempty"`
	Uptime   string `json:"uptime,omitempty"`
	Database string `json:"database,omitempty"`
}

// GetSettings fetches the platform settings block
func (c *Console) GetSettings(ctx context.Context, sid string) (*domain.PlatformSettings, error) {
	var settings domain.PlatformSettings
	if err := c.get(ctx, sid, "/admin/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings applies a partial settings update
func (c *Console) UpdateSettings(ctx context.Context, sid string, req dto.SettingsRequest) error {
	return c.patch(ctx, sid, "/admin/settings", req, nil)
}

// GetPlatformFee fetches the platform fee percentage
func (c *Console) GetPlatformFee(ctx context.Context, sid string) (*PlatformFee, error) {
	var fee PlatformFee
	if err := c.get(ctx, sid, "/admin/settings/platform-fee", nil, &fee); err != nil {
		return nil, err
	}
	return &fee, nil
}

// UpdatePlatformFee updates the platform fee percentage
func (c *Console) UpdatePlatformFee(ctx context.Context, sid string, fee float64) error {
	return c.patch(ctx, sid, "/admin/settings/platform-fee", dto.PlatformFeeRequest{Fee: fee}, nil)
}

// GetSystemStatus fetches the backend system status
func (c *Console) GetSystemStatus(ctx context.Context, sid string) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.get(ctx, sid, "/admin/settings/system-status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ChangeAdminPassword changes the admin password
func (c *Console) ChangeAdminPassword(ctx context.Context, sid string, req dto.ChangePasswordRequest) error {
	return c.post(ctx, sid, "/admin/settings/change-password", req, nil)
}
