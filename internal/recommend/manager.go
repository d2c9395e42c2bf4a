// Package recommend implements the recipe recommendation cache. A Session
// owns the cached recommendation list for one user; the Manager hands out
// sessions keyed by user identifier and discards them on identity change.
package recommend

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Deps are the collaborators a session orchestrates. Now and TTL are
// optional and default to time.Now and DefaultCacheTTL.
type Deps struct {
	Inventory   InventoryReader
	Recommender RecommendationFetcher
	Generator   GenerativeFetcher
	Recorder    CompletionRecorder
	Logger      zerolog.Logger
	Now         func() time.Time
	TTL         time.Duration
}

// Manager creates and tracks per-user recommendation sessions. Cache state is
// never shared across user identifiers.
type Manager struct {
	deps Deps

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager with the given collaborators.
func NewManager(deps Deps) *Manager {
	return &Manager{
		deps:     deps,
		sessions: make(map[string]*Session),
	}
}

// ForUser returns the session for userID, creating an empty one on first use.
func (m *Manager) ForUser(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := newSession(userID, m.deps)
	m.sessions[userID] = s
	return s
}

// Release discards the session for userID. The next ForUser call starts from
// an empty cache. Call this on logout or when the owning view tears down.
func (m *Manager) Release(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
