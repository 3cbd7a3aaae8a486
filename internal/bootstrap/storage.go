package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/database"
	"github.com/osse101/CaseForge_Go/internal/storage"
	"github.com/osse101/CaseForge_Go/internal/storage/postgres"
	"github.com/osse101/CaseForge_Go/internal/storage/redis"
	"github.com/osse101/CaseForge_Go/migrations"
)

// InitializeStorage opens the session store selected by cfg.StorageBackend.
// The postgres backend applies pending migrations before returning.
func InitializeStorage(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, StoragePingTimeout)
	defer cancel()

	var store storage.Store
	switch cfg.StorageBackend {
	case config.StorageMemory:
		store = storage.NewMemoryStore()

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, poolConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		store = postgres.NewStore(pool)

	case config.StorageRedis:
		rs, err := redis.New(ctx, redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      redis.DefaultSessionTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		store = rs

	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	slog.Info(LogMsgStorageReady, "backend", cfg.StorageBackend)
	return store, nil
}

func poolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxConnIdle: cfg.DBMaxConnIdle,
		MaxConnLife: cfg.DBMaxConnLife,
	}
}
