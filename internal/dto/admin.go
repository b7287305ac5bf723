package dto

import (
	"net/url"
	"strconv"
)

// PageQuery carries pagination and free-form filters for list endpoints
type PageQuery struct {
	Page    int               `form:"page"`
	Limit   int               `form:"limit"`
	Filters map[string]string `form:"-"`
}

// Normalize applies the backend's pagination defaults
func (q *PageQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}

// Values encodes the query as upstream query parameters
func (q PageQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	for k, val := range q.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// StatusRequest changes a resource status
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReasonRequest carries an optional reason for moderation actions
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// UpdateUserRequest is a partial user update
type UpdateUserRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status,omitempty"`
	City   string `json:"city,omitempty"`
}

// PitchRequest creates or updates a pitch
type PitchRequest struct {
	Name      string  `json:"name,omitempty"`
	Owner     string  `json:"owner,omitempty"`
	City      string  `json:"city,omitempty"`
	Sport     string  `json:"sport,omitempty"`
	Location  string  `json:"location,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	PitchType string  `json:"pitchType,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// PlatformFeeRequest updates the platform fee percentage
type PlatformFeeRequest struct {
	Fee float64 `json:"fee" binding:"required"`
}

// SettingsRequest is a partial platform settings update
type SettingsRequest struct {
	PlatformFee      *float64 `json:"platformFee,omitempty"`
	SupportEmail     string   `json:"supportEmail,omitempty"`
	SupportPhone     string   `json:"supportPhone,omitempty"`
	MaintenanceMode  *bool    `json:"maintenanceMode,omitempty"`
	BookingLeadHours *int     `json:"bookingLeadHours,omitempty"`
}

// NotificationRequest sends a mass notification
type NotificationRequest struct {
	Message  string `json:"message" binding:"required"`
	UserType string `json:"userType,omitempty"` // users, owners, all
}
