package repository

import (
	"context"
	"sync"
	"time"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/domain"
)

// memorySessionRepository is an in-process session store used when Redis
// is unavailable (development, tests). Sessions do not survive restarts.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewMemorySessionRepository creates an in-memory session repository
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*domain.Session),
	}
}

func (r *memorySessionRepository) Save(ctx context.Context, session *domain.Session) error {
	copied := *session
	r.mu.Lock()
	// Pointer replace keeps reads of the previous value consistent
	r.sessions[session.ID] = &copied
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || session.Expired(time.Now()) {
		return nil, domain.ErrNoSession
	}

	copied := *session
	return &copied, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}
