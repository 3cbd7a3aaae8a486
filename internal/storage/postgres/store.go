// Package postgres stores session values in PostgreSQL, one row per key.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// Store implements storage.Store on a pgx pool
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps an open pool. The session_values table must exist; see
// database.Migrate.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Load(ctx context.Context, sessionID string) (map[string][]byte, error) {
	rows, err := s.pool.Query(ctx, SQLSelectSessionValues, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToQuerySession, err)
	}
	defer rows.Close()

	values := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToScanValue, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToQuerySession, err)
	}

	if len(values) == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return values, nil
}

// Save writes every key in a single transaction. Keys not present in values
// are removed so the stored session matches values exactly.
func (s *Store) Save(ctx context.Context, sessionID string, values map[string][]byte) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToBeginTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", rbErr, "session_id", sessionID)
		}
	}()

	if _, err := tx.Exec(ctx, SQLDeleteSession, sessionID); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToSaveSession, err)
	}

	batch := &pgx.Batch{}
	for key, value := range values {
		batch.Queue(SQLUpsertSessionValue, sessionID, key, value)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToSaveSession, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToCommit, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.pool.Exec(ctx, SQLDeleteSession, sessionID); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageFailure, ErrMsgFailedToDeleteSession, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
