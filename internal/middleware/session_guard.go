package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// Context keys set by the session guard
const (
	ContextKeySessionID = "session_id"
	ContextKeyUserID    = "user_id"
	ContextKeyRole      = "role"
)

// SessionGuard rejects requests without a valid session, answering 401
// with an expired cookie so the UI returns to the login entry point.
func SessionGuard(codec *CookieCodec, resolve func(c *gin.Context, sessionID string) (*domain.Session, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(codec.Name())
		if err != nil || value == "" {
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		sessionID, err := codec.Parse(value)
		if err != nil {
			codec.Clear(c)
			response.Unauthorized(c, "Authentication required")
			c.Abort()
			return
		}

		session, err := resolve(c, sessionID)
		if err != nil {
			codec.Clear(c)
			response.SessionExpired(c)
			c.Abort()
			return
		}

		c.Set(ContextKeySessionID, session.ID)
		c.Set(ContextKeyUserID, session.Identity.ID)
		c.Set(ContextKeyRole, string(session.Identity.Role))
		c.Next()
	}
}

// SessionID returns the guarded session id from the request context
func SessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
