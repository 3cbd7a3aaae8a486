package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/fairness"
	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/odds"
)

// MockLedger mocks ledger.Service
type MockLedger struct {
	mock.Mock
}

var _ ledger.Service = (*MockLedger)(nil)

func (m *MockLedger) GetState(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	args := m.Called(ctx, sessionID)
	state, _ := args.Get(0).(*domain.SessionState)
	return state, args.Error(1)
}

func (m *MockLedger) ResetSession(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	args := m.Called(ctx, sessionID)
	state, _ := args.Get(0).(*domain.SessionState)
	return state, args.Error(1)
}

func (m *MockLedger) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockLedger) OpenCase(ctx context.Context, sessionID, caseID string) (*ledger.OpenCaseResult, error) {
	args := m.Called(ctx, sessionID, caseID)
	res, _ := args.Get(0).(*ledger.OpenCaseResult)
	return res, args.Error(1)
}

func (m *MockLedger) SellItem(ctx context.Context, sessionID string, entryID uuid.UUID) (*ledger.SellResult, error) {
	args := m.Called(ctx, sessionID, entryID)
	res, _ := args.Get(0).(*ledger.SellResult)
	return res, args.Error(1)
}

func (m *MockLedger) RemoveItem(ctx context.Context, sessionID string, entryID uuid.UUID) error {
	return m.Called(ctx, sessionID, entryID).Error(0)
}

func (m *MockLedger) ClearInventory(ctx context.Context, sessionID string) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedger) QuoteUpgrade(ctx context.Context, sessionID string, req ledger.UpgradeRequest) (*odds.Quote, error) {
	args := m.Called(ctx, sessionID, req)
	res, _ := args.Get(0).(*odds.Quote)
	return res, args.Error(1)
}

func (m *MockLedger) Upgrade(ctx context.Context, sessionID string, req ledger.UpgradeRequest) (*ledger.UpgradeOutcome, error) {
	args := m.Called(ctx, sessionID, req)
	res, _ := args.Get(0).(*ledger.UpgradeOutcome)
	return res, args.Error(1)
}

func (m *MockLedger) UpgradeHistory(ctx context.Context, sessionID string) ([]domain.UpgradeHistoryRecord, error) {
	args := m.Called(ctx, sessionID)
	res, _ := args.Get(0).([]domain.UpgradeHistoryRecord)
	return res, args.Error(1)
}

func (m *MockLedger) ClearUpgradeHistory(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockLedger) UpgradeTargets(ctx context.Context, sessionID string) ([]domain.UpgradeTarget, error) {
	args := m.Called(ctx, sessionID)
	res, _ := args.Get(0).([]domain.UpgradeTarget)
	return res, args.Error(1)
}

func (m *MockLedger) AddCustomTarget(ctx context.Context, sessionID, marketID string) (*domain.UpgradeTarget, error) {
	args := m.Called(ctx, sessionID, marketID)
	res, _ := args.Get(0).(*domain.UpgradeTarget)
	return res, args.Error(1)
}

func (m *MockLedger) RemoveCustomTarget(ctx context.Context, sessionID, targetID string) error {
	return m.Called(ctx, sessionID, targetID).Error(0)
}

func (m *MockLedger) ExecuteContract(ctx context.Context, sessionID string, entryIDs []uuid.UUID) (*ledger.ContractResult, error) {
	args := m.Called(ctx, sessionID, entryIDs)
	res, _ := args.Get(0).(*ledger.ContractResult)
	return res, args.Error(1)
}

func (m *MockLedger) RedeemPromo(ctx context.Context, sessionID, code string) (*ledger.PromoResult, error) {
	args := m.Called(ctx, sessionID, code)
	res, _ := args.Get(0).(*ledger.PromoResult)
	return res, args.Error(1)
}

func (m *MockLedger) DailyBonusStatus(ctx context.Context, sessionID string, now time.Time) (*ledger.DailyBonusStatus, error) {
	args := m.Called(ctx, sessionID, now)
	res, _ := args.Get(0).(*ledger.DailyBonusStatus)
	return res, args.Error(1)
}

func (m *MockLedger) ClaimDailyBonus(ctx context.Context, sessionID string, now time.Time) (*ledger.DailyBonusResult, error) {
	args := m.Called(ctx, sessionID, now)
	res, _ := args.Get(0).(*ledger.DailyBonusResult)
	return res, args.Error(1)
}

// MockPinger mocks the storage readiness check
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// stubFairness is a fixed FairnessInfo
type stubFairness struct{}

func (stubFairness) Commitment() string { return "abc123" }
func (stubFairness) ClientSeed() string { return "client" }
func (stubFairness) Nonce() uint64      { return 7 }

// stubRotator hands out a fixed Reveal or error
type stubRotator struct {
	reveal fairness.Reveal
	err    error
}

func (s stubRotator) RotateFair() (fairness.Reveal, error) { return s.reveal, s.err }
