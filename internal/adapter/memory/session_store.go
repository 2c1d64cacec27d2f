package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

// SessionStore implements port.SessionStore in process memory. Sessions are
// lost on restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]domain.Session)}
}

// Get returns a copy of the stored session.
func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	return clone(sess), nil
}

// Save stores a copy of sess, replacing any previous version.
func (s *SessionStore) Save(_ context.Context, sess *domain.Session) error {
	s.mu.Lock()
	s.sessions[sess.ID] = *clone(*sess)
	s.mu.Unlock()
	return nil
}

// Delete removes the session.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return port.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func clone(sess domain.Session) *domain.Session {
	sess.Extracted = maps.Clone(sess.Extracted)
	sess.Missing = slices.Clone(sess.Missing)
	return &sess
}
