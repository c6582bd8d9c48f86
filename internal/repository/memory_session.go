package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Tramle26/ai-economic-consultant/internal/model"
)

type memoryEntry struct {
	session   model.Session
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process. It is used when no Redis
// URL is configured.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return model.Session{}, ErrSessionNotFound
	}
	if m.ttl > 0 && m.now().After(entry.expiresAt) {
		delete(m.sessions, id)
		return model.Session{}, ErrSessionNotFound
	}

	s := entry.session
	s.ChatHistory = append([]model.ChatTurn{}, s.ChatHistory...)
	return s, nil
}

func (m *MemorySessionStore) Save(_ context.Context, s model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	s.ChatHistory = append([]model.ChatTurn{}, s.ChatHistory...)
	m.sessions[s.ID] = memoryEntry{session: s, expiresAt: now.Add(m.ttl)}
	return nil
}

// sweep drops expired entries. Callers hold mu.
func (m *MemorySessionStore) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, entry := range m.sessions {
		if now.After(entry.expiresAt) {
			delete(m.sessions, id)
		}
	}
}

func (m *MemorySessionStore) Ping(context.Context) error {
	return nil
}
