package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/concurrency"
	"github.com/osse101/CaseForge_Go/internal/cooldown"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/odds"
	"github.com/osse101/CaseForge_Go/internal/resolver"
	"github.com/osse101/CaseForge_Go/internal/reward"
	"github.com/osse101/CaseForge_Go/internal/storage"
)

// Service defines the interface for session ledger operations
type Service interface {
	GetState(ctx context.Context, sessionID string) (*domain.SessionState, error)
	ResetSession(ctx context.Context, sessionID string) (*domain.SessionState, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Cases and inventory
	OpenCase(ctx context.Context, sessionID, caseID string) (*OpenCaseResult, error)
	SellItem(ctx context.Context, sessionID string, entryID uuid.UUID) (*SellResult, error)
	RemoveItem(ctx context.Context, sessionID string, entryID uuid.UUID) error
	ClearInventory(ctx context.Context, sessionID string) (int, error)

	// Upgrades
	QuoteUpgrade(ctx context.Context, sessionID string, req UpgradeRequest) (*odds.Quote, error)
	Upgrade(ctx context.Context, sessionID string, req UpgradeRequest) (*UpgradeOutcome, error)
	UpgradeHistory(ctx context.Context, sessionID string) ([]domain.UpgradeHistoryRecord, error)
	ClearUpgradeHistory(ctx context.Context, sessionID string) error
	UpgradeTargets(ctx context.Context, sessionID string) ([]domain.UpgradeTarget, error)
	AddCustomTarget(ctx context.Context, sessionID, marketID string) (*domain.UpgradeTarget, error)
	RemoveCustomTarget(ctx context.Context, sessionID, targetID string) error

	// Contracts, promo codes and the daily bonus
	ExecuteContract(ctx context.Context, sessionID string, entryIDs []uuid.UUID) (*ContractResult, error)
	RedeemPromo(ctx context.Context, sessionID, code string) (*PromoResult, error)
	DailyBonusStatus(ctx context.Context, sessionID string, now time.Time) (*DailyBonusStatus, error)
	ClaimDailyBonus(ctx context.Context, sessionID string, now time.Time) (*DailyBonusResult, error)
}

// Publisher receives an event after every committed action
type Publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// Options tunes a Service. Zero values fall back to defaults.
type Options struct {
	StartingBalance float64
	CacheSize       int
	CacheTTL        time.Duration
	Cooldowns       cooldown.Config
	Now             func() time.Time
}

// service implements the Service interface
type service struct {
	store     storage.Store
	codec     storage.Codec
	catalog   *catalog.Catalog
	generator *reward.Generator
	resolver  *resolver.Resolver
	publisher Publisher
	cooldowns cooldown.Config
	locks     *concurrency.LockManager
	cache     *sessionCache
	now       func() time.Time
}

// NewService creates a ledger service. A nil publisher discards events.
func NewService(store storage.Store, cat *catalog.Catalog, gen *reward.Generator, res *resolver.Resolver, pub Publisher, opts Options) Service {
	if opts.StartingBalance <= 0 {
		opts.StartingBalance = domain.DefaultStartingBalance
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		store:     store,
		codec:     storage.Codec{StartingBalance: opts.StartingBalance},
		catalog:   cat,
		generator: gen,
		resolver:  res,
		publisher: pub,
		cooldowns: opts.Cooldowns,
		locks:     concurrency.NewLockManager(),
		cache:     newSessionCache(opts.CacheSize, opts.CacheTTL),
		now:       opts.Now,
	}
}

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptySessionID)
	}
	if len(sessionID) > MaxSessionIDLength {
		return fmt.Errorf("%w: "+ErrMsgSessionIDTooLong, domain.ErrInvalidInput, MaxSessionIDLength)
	}
	return nil
}

// load returns the current state of a session. The caller must hold the
// session lock. A session that was never saved starts fresh; created
// reports that case.
func (s *service) load(ctx context.Context, sessionID string) (state *domain.SessionState, created bool, err error) {
	if cached, ok := s.cache.Get(sessionID); ok {
		return cached, false, nil
	}

	values, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", sessionID)
		return domain.NewSessionState(sessionID, s.codec.StartingBalance), true, nil
	}
	if err != nil {
		return nil, false, err
	}

	state, err = s.codec.Decode(sessionID, values)
	if err != nil {
		return nil, false, err
	}
	logger.FromContext(ctx).Debug(LogMsgSessionLoaded, "session_id", sessionID)
	return state, false, nil
}

func (s *service) save(ctx context.Context, state *domain.SessionState) error {
	values, err := s.codec.Encode(state)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, state.SessionID, values); err != nil {
		logger.FromContext(ctx).Error(LogMsgSessionSaveFailed, "error", err, "session_id", state.SessionID)
		return err
	}
	return nil
}

// mutate runs fn on a copy of the session under the session lock. The copy
// is saved and only then replaces the cached state, so an error from fn or
// from the store leaves the session exactly as it was.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(state *domain.SessionState) error) (*domain.SessionState, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	current, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		logger.FromContext(ctx).Debug(LogMsgActionRejected, "session_id", sessionID, "error", err)
		return nil, err
	}

	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	s.cache.Set(sessionID, next)
	return next.Clone(), nil
}

// read returns a copy of the session under the session lock
func (s *service) read(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	state, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

func (s *service) publish(ctx context.Context, eventType event.Type, sessionID string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event.New(eventType, sessionID, payload, s.now())); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err, "event_type", eventType)
	}
}

// GetState returns the session, saving a fresh one on first access
func (s *service) GetState(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	state, created, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if created {
		if err := s.save(ctx, state); err != nil {
			return nil, err
		}
		s.cache.Set(sessionID, state)
	}
	return state.Clone(), nil
}

// ResetSession replaces the session with a fresh one
func (s *service) ResetSession(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	state, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		*st = *domain.NewSessionState(sessionID, s.codec.StartingBalance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSessionReset, "session_id", sessionID)
	s.publish(ctx, event.SessionReset, sessionID, event.BalancePayloadV1{Balance: state.Balance})
	return state, nil
}

// DeleteSession removes the session from the store and the cache. The next
// access starts a fresh session.
func (s *service) DeleteSession(ctx context.Context, sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.cache.Invalidate(sessionID)

	logger.FromContext(ctx).Info(LogMsgSessionDeleted, "session_id", sessionID)
	return nil
}
