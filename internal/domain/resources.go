package domain

// Admin resource models, mirroring the booking backend's payloads.
// The backend is the source of truth; these are read models for the console.

// City is a city reference attached to users, owners and pitches
type City struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// Sport is a sport reference attached to pitches
type Sport struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// User is a platform end user
type User struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	City          *City  `json:"city,omitempty"`
	Status        string `json:"status"` // active, inactive, banned
	TotalBookings int    `json:"totalBookings,omitempty"`
	NoShows       int    `json:"noShows,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

// PitchOwner is a pitch operator account
type PitchOwner struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	BusinessName  string  `json:"businessName,omitempty"`
	Phone         string  `json:"phone"`
	City          *City   `json:"city,omitempty"`
	Status        string  `json:"status"` // verified, pending, rejected, suspended
	TotalBookings int     `json:"totalBookings,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	UpdatedAt     string  `json:"updatedAt,omitempty"`
}

// Pitch is a bookable sports pitch
type Pitch struct {
	ID        string      `json:"_id"`
	Name      string      `json:"name"`
	Owner     *PitchOwner `json:"owner,omitempty"`
	City      *City       `json:"city,omitempty"`
	Sport     *Sport      `json:"sport,omitempty"`
	Location  string      `json:"location,omitempty"`
	Price     float64     `json:"price"`
	Currency  string      `json:"currency,omitempty"`
	PitchType string      `json:"pitchType,omitempty"` // indoor, outdoor
	Status    string      `json:"status"`              // active, maintenance, inactive, blocked
	Image     string      `json:"image,omitempty"`
	CreatedAt string      `json:"createdAt,omitempty"`
	UpdatedAt string      `json:"updatedAt,omitempty"`
}

// Booking is a pitch reservation
type Booking struct {
	ID        string  `json:"_id"`
	BookingID string  `json:"bookingId,omitempty"`
	User      *User   `json:"userId,omitempty"`
	Pitch     *Pitch  `json:"pitchId,omitempty"`
	Date      string  `json:"date"`
	TimeSlot  string  `json:"timeSlot"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency,omitempty"`
	Status    string  `json:"status"` // pending, confirmed, completed, cancelled, noshow
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// DashboardStats is the dashboard headline block
type DashboardStats struct {
	TodayBookings        int     `json:"todayBookings"`
	TotalRevenue         float64 `json:"totalRevenue"`
	ActiveIssues         int     `json:"activeIssues"`
	NoShowRate           float64 `json:"noShowRate"`
	PendingVerifications int     `json:"pendingVerifications,omitempty"`
}

// BookingTrendPoint is one day of the booking trend chart
type BookingTrendPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// TopPitch is one entry of the top-pitches dashboard widget
type TopPitch struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Rating   float64 `json:"rating"`
}

// OwnerStats aggregates a pitch owner's performance
type OwnerStats struct {
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
	Rating   float64 `json:"rating"`
	NoShows  int     `json:"noShows,omitempty"`
}

// RevenueTrendPoint is one day of the revenue report trend
type RevenueTrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// RevenueReport is the revenue reporting block
type RevenueReport struct {
	Total           float64             `json:"total"`
	Bookings        int                 `json:"bookings"`
	AvgBookingValue float64             `json:"avgBookingValue"`
	PlatformFee     float64             `json:"platformFee"`
	FeePercentage   float64             `json:"feePercentage"`
	Growth          float64             `json:"growth,omitempty"`
	Trend           []RevenueTrendPoint `json:"trend,omitempty"`
}

// PlatformSettings holds the platform-wide configuration block
type PlatformSettings struct {
	PlatformFee      float64 `json:"platformFee"`
	SupportEmail     string  `json:"supportEmail,omitempty"`
	SupportPhone     string  `json:"supportPhone,omitempty"`
	MaintenanceMode  bool    `json:"maintenanceMode"`
	BookingLeadHours int     `json:"bookingLeadHours,omitempty"`
}

// SystemLockStatus reports the emergency system lock
type SystemLockStatus struct {
	Locked   bool   `json:"locked"`
	Reason   string `json:"reason,omitempty"`
	LockedAt string `json:"lockedAt,omitempty"`
}

// Notification is one mass-notification history entry
type Notification struct {
	ID       string `json:"_id"`
	Message  string `json:"message"`
	UserType string `json:"userType,omitempty"`
	SentAt   string `json:"sentAt,omitempty"`
}
