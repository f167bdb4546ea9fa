package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager tracks live sessions by id. The map is shared across requests, so it
// carries its own lock; the sessions inside stay single-threaded.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}

// Create starts a fresh session with a new id and an empty store.
func (m *Manager) Create() (*Session, error) {
	sess, err := newSession(uuid.NewString())
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess, nil
}

// Destroy removes and closes a session. Unknown ids are a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	sess, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		sess.Close()
	}
}
