package main

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/di"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
)

// registerRoutes wires all HTTP routes
func registerRoutes(router *gin.Engine, c *di.Container) {
	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	v1 := router.Group("/api/v1")

	// Public auth endpoints
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.POST("/forget", c.AuthHandler.ForgetPassword)
		auth.POST("/verify", c.AuthHandler.VerifyOTP)
		auth.POST("/reset-password", c.AuthHandler.ResetPassword)
	}

	guard := middleware.SessionGuard(c.Cookies, func(gc *gin.Context, sessionID string) (*domain.Session, error) {
		return c.Authority.Resolve(gc.Request.Context(), sessionID)
	})

	auth.GET("/session", guard, c.AuthHandler.Session)

	// Guarded admin surface
	admin := v1.Group("/admin", guard)
	{
		dashboard := admin.Group("/dashboard")
		{
			dashboard.GET("/stats", c.DashboardHandler.Stats)
			dashboard.GET("/booking-trend", c.DashboardHandler.BookingTrend)
			dashboard.GET("/top-pitches", c.DashboardHandler.TopPitches)
			dashboard.GET("/recent-bookings", c.DashboardHandler.RecentBookings)
		}
		admin.GET("/reports/revenue", c.DashboardHandler.RevenueReport)

		bookings := admin.Group("/bookings")
		{
			bookings.GET("", c.BookingHandler.List)
			bookings.GET("/:id", c.BookingHandler.Get)
			bookings.PATCH("/:id/status", c.BookingHandler.UpdateStatus)
			bookings.POST("/:id/cancel", c.BookingHandler.Cancel)
			bookings.POST("/:id/confirm", c.BookingHandler.Confirm)
			bookings.DELETE("/:id", c.BookingHandler.Delete)
		}

		users := admin.Group("/users")
		{
			users.GET("", c.UserHandler.List)
			users.GET("/search", c.UserHandler.Search)
			users.GET("/:id", c.UserHandler.Get)
			users.PATCH("/:id", c.UserHandler.Update)
			users.POST("/:id/ban", c.UserHandler.Ban)
			users.POST("/:id/unban", c.UserHandler.Unban)
			users.DELETE("/:id", c.UserHandler.Delete)
		}

		owners := admin.Group("/pitch-owners")
		{
			owners.GET("", c.OwnerHandler.List)
			owners.GET("/:id", c.OwnerHandler.Get)
			owners.GET("/:id/stats", c.OwnerHandler.Stats)
			owners.POST("/:id/verify", c.OwnerHandler.Verify)
			owners.POST("/:id/reject", c.OwnerHandler.Reject)
			owners.POST("/:id/suspend", c.OwnerHandler.Suspend)
		}

		pitches := admin.Group("/pitches")
		{
			pitches.GET("", c.PitchHandler.List)
			pitches.POST("", c.PitchHandler.Create)
			pitches.GET("/:id", c.PitchHandler.Get)
			pitches.GET("/:id/analytics", c.PitchHandler.Analytics)
			pitches.PATCH("/:id", c.PitchHandler.Update)
			pitches.PATCH("/:id/status", c.PitchHandler.UpdateStatus)
			pitches.DELETE("/:id", c.PitchHandler.Delete)
		}

		settings := admin.Group("/settings")
		{
			settings.GET("", c.SettingsHandler.Get)
			settings.PATCH("", c.SettingsHandler.Update)
			settings.GET("/platform-fee", c.SettingsHandler.GetPlatformFee)
			settings.PATCH("/platform-fee", c.SettingsHandler.UpdatePlatformFee)
			settings.GET("/system-status", c.SettingsHandler.SystemStatus)
			settings.POST("/change-password", c.SettingsHandler.ChangePassword)
		}

		emergency := admin.Group("/emergency")
		{
			emergency.POST("/lock-system", c.EmergencyHandler.LockSystem)
			emergency.POST("/unlock-system", c.EmergencyHandler.UnlockSystem)
			emergency.GET("/lock-status", c.EmergencyHandler.LockStatus)
			emergency.POST("/notification", c.EmergencyHandler.SendNotification)
			emergency.GET("/notifications", c.EmergencyHandler.NotificationHistory)
		}
	}
}
