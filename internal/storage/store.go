package storage

import (
	"context"
)

// Store persists per-session keyed values. Save writes every key in one
// atomic operation and replaces whatever was stored before. Load returns
// domain.ErrSessionNotFound for a session that was never saved.
type Store interface {
	Load(ctx context.Context, sessionID string) (map[string][]byte, error)
	Save(ctx context.Context, sessionID string, values map[string][]byte) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
	Close() error
}
