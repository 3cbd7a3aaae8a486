package storage

import (
	"context"
	"sync"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// MemoryStore keeps sessions in process memory. Values are copied in and
// out so callers never share buffers with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return copyValues(stored), nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = copyValues(values)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func copyValues(in map[string][]byte) map[string][]byte {
	out := make(map[string][]byte, len(in))
	for k, v := range in {
		out[k] = append([]byte(nil), v...)
	}
	return out
}
