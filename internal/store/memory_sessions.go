package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-hub/models"
)

// memorySessionRepository keeps sessions in a map guarded by a mutex. Nothing
// survives a restart.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

// NewMemorySessionRepository returns an empty in-memory [SessionRepository].
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

func (r *memorySessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token] = session
	return nil
}

// FindSession returns the session for token. Expired sessions are dropped and
// reported as not found.
func (r *memorySessionRepository) FindSession(ctx context.Context, token string) (models.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	if session.Expired(r.now()) {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (r *memorySessionRepository) DeleteUserSessions(ctx context.Context, userGUID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, s := range r.sessions {
		if s.UserGUID == userGUID {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed, nil
}
