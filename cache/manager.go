// Package cache provides the in-memory guide session store. Sessions hold the
// immutable item list loaded at page load plus its interaction state, and are
// swept after a period of inactivity.
package cache

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/DenverRacingSocial/orientation-go/config"
	"github.com/DenverRacingSocial/orientation-go/models"
	"github.com/DenverRacingSocial/orientation-go/orientation"
	"github.com/oklog/ulid/v2"
)

var GlobalInstance *Manager

// GetGlobalManager returns the global session manager instance
func GetGlobalManager() *Manager {
	return GlobalInstance
}

// GuideSession is one loaded guide: the item list is created once from a
// fetch (or the fallback sample set) and is immutable for the session's life.
type GuideSession struct {
	ID           string
	View         string
	Items        []*models.OrientationItem
	Tracker      *orientation.Tracker
	UsedFallback bool
	LastAccessed time.Time
}

// Manager coordinates all guide sessions
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*GuideSession
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*GuideSession),
	}
}

// NewSessionID generates a sortable unique session id
func NewSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// SetSession stores a session under its id
func (m *Manager) SetSession(session *GuideSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.LastAccessed = time.Now()
	m.sessions[session.ID] = session
}

// GetSession retrieves a session and refreshes its last-accessed time
func (m *Manager) GetSession(id string) (*GuideSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, exists := m.sessions[id]
	if !exists {
		return nil, false
	}
	session.LastAccessed = time.Now()
	return session, true
}

// SessionCount returns the number of live sessions
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanupExpired drops sessions idle longer than ttl and reports how many
func (m *Manager) CleanupExpired(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-ttl)
	removed := 0
	for id, session := range m.sessions {
		if session.LastAccessed.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine sweeps expired sessions on the configured interval
func StartCleanupRoutine(manager *Manager) {
	go func() {
		ticker := time.NewTicker(config.SessionCleanupInterval)
		defer ticker.Stop()

		for range ticker.C {
			manager.CleanupExpired(config.SessionTTL)
		}
	}()
}
