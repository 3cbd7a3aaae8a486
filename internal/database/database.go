package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// PoolConfig sizes the session store's connection pool
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxConnIdle time.Duration
	MaxConnLife time.Duration
}

// NewPool opens a pgx pool for the session store and pings it. Failures
// wrap domain.ErrStorageFailure; the connection string never appears in
// errors or logs since it carries the password.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStorageFailure, ErrMsgFailedToParseConnString)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	poolConfig.MaxConns = int32(maxConns)
	poolConfig.MinConns = min(DefaultMinConnections, poolConfig.MaxConns)
	if cfg.MaxConnLife > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLife
	}
	if cfg.MaxConnIdle > 0 {
		poolConfig.MaxConnIdleTime = cfg.MaxConnIdle
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %s %s/%s: %v", domain.ErrStorageFailure, ErrMsgFailedToPingDatabase,
			poolConfig.ConnConfig.Host, poolConfig.ConnConfig.Database, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", poolConfig.ConnConfig.Host,
		"database", poolConfig.ConnConfig.Database,
		"max_conns", poolConfig.MaxConns)
	return pool, nil
}
