// Package redis stores session values in a Redis hash per session.
//
// Key schema:
//
//	caseforge:session:{id} - hash, one field per session key, JSON values
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// Config holds connection parameters for the Redis client
type Config struct {
	Addr     string
	Password string
	DB       int
	// TTL refreshes on every save; zero keeps sessions forever
	TTL time.Duration
}

// Store implements storage.Store on go-redis
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects and pings. It returns an error if Redis is unreachable.
func New(ctx context.Context, cfg Config) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgPingFailed, err)
	}
	return &Store{rdb: rdb, ttl: cfg.TTL}, nil
}

func sessionKey(id string) string { return KeyPrefix + id }

func (s *Store) Load(ctx context.Context, sessionID string) (map[string][]byte, error) {
	fields, err := s.rdb.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgLoadFailed+": %v", domain.ErrStorageFailure, sessionID, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	values := make(map[string][]byte, len(fields))
	for k, v := range fields {
		values[k] = []byte(v)
	}
	return values, nil
}

// Save replaces the hash inside MULTI/EXEC so readers never see a mix of
// old and new keys
func (s *Store) Save(ctx context.Context, sessionID string, values map[string][]byte) error {
	key := sessionKey(sessionID)

	args := make([]any, 0, len(values)*2)
	for k, v := range values {
		args = append(args, k, v)
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(args) > 0 {
			pipe.HSet(ctx, key, args...)
		}
		if s.ttl > 0 {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: "+ErrMsgSaveFailed+": %v", domain.ErrStorageFailure, sessionID, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: "+ErrMsgDeleteFailed+": %v", domain.ErrStorageFailure, sessionID, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgPingFailed, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
