package repository

import (
	"context"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
)

// SessionRepository persists admin sessions.
//
// Save replaces the whole session value so a concurrent reader always
// observes a fully-committed session, never a half-refreshed token pair.
// Get returns domain.ErrNoSession when the id is unknown or expired.
// Delete is idempotent.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
