package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Entries are reference counted
// and dropped once no caller holds or waits on them, so the map only grows
// with the number of keys in use at the same time.
type LockManager struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{entries: make(map[string]*lockEntry)}
}

// Lock blocks until the key's mutex is held and returns the function that
// releases it. The returned function must be called exactly once.
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	e, ok := lm.entries[key]
	if !ok {
		e = &lockEntry{}
		lm.entries[key] = e
	}
	e.refs++
	lm.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			lm.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(lm.entries, key)
			}
			lm.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.entries)
}
