package stubserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionMeta struct {
	UserID    int64
	ExpiresAt time.Time
}

// sessionManager issues and validates opaque bearer tokens.
type sessionManager struct {
	mu     sync.RWMutex
	ttl    time.Duration
	tokens map[string]sessionMeta
}

func newSessionManager(ttl time.Duration) *sessionManager {
	return &sessionManager{
		ttl:    ttl,
		tokens: make(map[string]sessionMeta),
	}
}

func (m *sessionManager) Issue(userID int64) string {
	token := uuid.NewString()
	m.mu.Lock()
	m.tokens[token] = sessionMeta{UserID: userID, ExpiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return token
}

func (m *sessionManager) Validate(token string) (int64, bool) {
	m.mu.RLock()
	meta, ok := m.tokens[token]
	m.mu.RUnlock()
	if !ok {
		return 0, false
	}
	if time.Now().After(meta.ExpiresAt) {
		m.mu.Lock()
		delete(m.tokens, token)
		m.mu.Unlock()
		return 0, false
	}
	return meta.UserID, true
}
