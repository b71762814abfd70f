package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns the live sessions.
type Manager struct {
	engine Engine

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(engine Engine) *Manager {
	return &Manager{engine: engine, sessions: make(map[string]*Session)}
}

// Create starts a new session on the landing screen.
func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.engine)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session and marks it active, so sessions that are only
// read are not swept.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch()
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than ttl. Busy sessions are kept.
func (m *Manager) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		last, busy := s.idleSince()
		if busy || last.After(cutoff) {
			continue
		}
		delete(m.sessions, id)
		removed++
	}
	return removed
}

// Janitor sweeps expired sessions every interval until ctx is done.
func (m *Manager) Janitor(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(ttl); n > 0 {
				slog.Info("Expired sessions removed", "count", n, "remaining", m.Len())
			}
		}
	}
}
