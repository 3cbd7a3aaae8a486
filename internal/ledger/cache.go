package ledger

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// sessionCache keeps recently used sessions in memory with time-based
// expiration. Entries are only written after a successful save, so the
// cache never holds state the store does not.
type sessionCache struct {
	lru *expirable.LRU[string, *domain.SessionState]
}

func newSessionCache(size int, ttl time.Duration) *sessionCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &sessionCache{
		lru: expirable.NewLRU[string, *domain.SessionState](size, nil, ttl),
	}
}

// Get returns the cached state
func (c *sessionCache) Get(sessionID string) (*domain.SessionState, bool) {
	return c.lru.Get(sessionID)
}

// Set stores a state the caller will no longer mutate
func (c *sessionCache) Set(sessionID string, state *domain.SessionState) {
	c.lru.Add(sessionID, state)
}

// Invalidate drops a session so the next access reloads it from the store
func (c *sessionCache) Invalidate(sessionID string) {
	c.lru.Remove(sessionID)
}
