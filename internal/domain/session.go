package domain

import (
	"time"
)

// State represents the session lifecycle state
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
	StateRefreshing      State = "refreshing"
	StateInvalidated     State = "invalidated"
)

// Role represents the admin role attached to a session
type Role string

const (
	RoleAdmin Role = "admin"
)

// Identity is the denormalized user identity attached to a session.
// Written only at login time, read-only afterwards.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  Role   `json:"role"`
}

// TokenPair holds the opaque bearer tokens issued by the booking backend.
// Never serialized towards the browser.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Valid reports whether both tokens are present. A session may only be
// persisted when this holds.
func (t TokenPair) Valid() bool {
	return t.AccessToken != "" && t.RefreshToken != ""
}

// Session is the aggregate of tokens, identity and expiry metadata.
// Exactly one session exists per browser context; updates replace the
// whole value so readers never observe a half-refreshed pair.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	Tokens    TokenPair `json:"tokens"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the absolute session lifetime has passed
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// WithTokens returns a copy of the session carrying the given token pair.
// Only token fields change on refresh; identity and expiry are preserved.
func (s *Session) WithTokens(tokens TokenPair) *Session {
	next := *s
	next.Tokens = tokens
	return &next
}
