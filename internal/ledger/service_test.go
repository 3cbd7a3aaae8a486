package ledger

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/resolver"
	"github.com/osse101/CaseForge_Go/internal/reward"
	"github.com/osse101/CaseForge_Go/internal/storage"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

const testSession = "session-1"

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	svc   Service
	store *storage.MemoryStore
	pub   *recordingPublisher
}

// newTestEnv wires a service over an in-memory store. genSrc drives case,
// contract and bonus rolls; resSrc drives upgrade draws.
func newTestEnv(t *testing.T, genSrc, resSrc utils.RandomSource) *testEnv {
	t.Helper()
	store := storage.NewMemoryStore()
	pub := &recordingPublisher{}
	cat := catalog.Default()
	svc := NewService(store, cat, reward.NewGenerator(genSrc, cat), resolver.New(resSrc), pub, Options{
		Now: func() time.Time { return testNow },
	})
	return &testEnv{svc: svc, store: store, pub: pub}
}

// seed saves state directly to the store, bypassing the service
func (e *testEnv) seed(t *testing.T, state *domain.SessionState) {
	t.Helper()
	values, err := storage.Codec{}.Encode(state)
	require.NoError(t, err)
	require.NoError(t, e.store.Save(context.Background(), state.SessionID, values))
}

func (e *testEnv) state(t *testing.T) *domain.SessionState {
	t.Helper()
	st, err := e.svc.GetState(context.Background(), testSession)
	require.NoError(t, err)
	return st
}

func entry(name string, r domain.Rarity, value float64) domain.InventoryEntry {
	return domain.NewInventoryEntry(domain.Item{ID: "seed", Name: name, Rarity: r, Value: value}, "seed", testNow)
}

func TestGetState_CreatesFreshSession(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	st := env.state(t)

	assert.Equal(t, domain.DefaultStartingBalance, st.Balance)
	assert.Empty(t, st.Inventory)
	_, err := env.store.Load(context.Background(), testSession)
	assert.NoError(t, err, "fresh session is persisted")
}

func TestGetState_InvalidSessionID(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	_, err := env.svc.GetState(context.Background(), "")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = env.svc.GetState(context.Background(), strings.Repeat("x", MaxSessionIDLength+1))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGetState_ReturnsCopy(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	st := env.state(t)
	st.Balance = 0
	st.Inventory = append(st.Inventory, entry("x", domain.RarityCommon, 1))

	again := env.state(t)
	assert.Equal(t, domain.DefaultStartingBalance, again.Balance)
	assert.Empty(t, again.Inventory)
}

func TestOpenCase_Success(t *testing.T) {
	// ARRANGE: legendary tier, first pool item, winner slot 25
	env := newTestEnv(t, utils.FixedSource(0.99, 0.0, 0.5), nil)

	// ACT
	res, err := env.svc.OpenCase(context.Background(), testSession, "chupacabra")

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "AK-47 | Огненный змей", res.Entry.Name)
	assert.Equal(t, 1200.0, res.Entry.Value)
	assert.Equal(t, "ЧУПАКАБРА", res.Entry.Source)
	assert.Equal(t, testNow, res.Entry.AcquiredAt)
	assert.Equal(t, domain.DefaultStartingBalance-29, res.Balance)
	assert.Equal(t, domain.CaseRevealDelay, res.RevealAfter)
	assert.Equal(t, 25, res.WinnerIndex)

	st := env.state(t)
	require.Len(t, st.Inventory, 1)
	assert.Equal(t, res.Entry.EntryID, st.Inventory[0].EntryID)
	assert.Equal(t, 1, st.Stats.CasesOpened)
	assert.Equal(t, 29.0, st.Stats.TotalSpent)
	assert.Equal(t, 1200.0, st.Stats.BiggestWin)

	assert.Equal(t, []event.Type{event.CaseOpened}, env.pub.types())
	payload := env.pub.last().Payload.(event.CaseOpenedPayloadV1)
	assert.Equal(t, "chupacabra", payload.CaseID)
}

func TestOpenCase_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t, utils.FixedSource(0.5), nil)
	env.seed(t, domain.NewSessionState(testSession, 10))

	_, err := env.svc.OpenCase(context.Background(), testSession, "dust2")

	assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))
	st := env.state(t)
	assert.Equal(t, 10.0, st.Balance)
	assert.Empty(t, st.Inventory)
	assert.Zero(t, st.Stats.CasesOpened)
	assert.Empty(t, env.pub.types())
}

func TestOpenCase_ExactBalance(t *testing.T) {
	env := newTestEnv(t, utils.FixedSource(0.1), nil)
	env.seed(t, domain.NewSessionState(testSession, 29))

	res, err := env.svc.OpenCase(context.Background(), testSession, "chupacabra")

	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Balance)
}

func TestOpenCase_UnknownCase(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	_, err := env.svc.OpenCase(context.Background(), testSession, "nope")

	assert.True(t, errors.Is(err, domain.ErrCaseNotFound))
}

func TestOpenCase_SaveFailureLeavesNoState(t *testing.T) {
	// ARRANGE
	store := new(MockStore)
	store.On("Load", mock.Anything, testSession).Return(nil, domain.ErrSessionNotFound)
	store.On("Save", mock.Anything, testSession, mock.Anything).Return(domain.ErrStorageFailure)
	pub := &recordingPublisher{}
	cat := catalog.Default()
	svc := NewService(store, cat, reward.NewGenerator(utils.FixedSource(0.2), cat), resolver.New(nil), pub, Options{})

	// ACT
	_, err := svc.OpenCase(context.Background(), testSession, "chupacabra")

	// ASSERT
	assert.True(t, errors.Is(err, domain.ErrStorageFailure))
	assert.Empty(t, pub.types())

	// the next read goes back to the store rather than a half-applied cache entry
	_, err = svc.OpenCase(context.Background(), testSession, "chupacabra")
	assert.Error(t, err)
	store.AssertNumberOfCalls(t, "Load", 2)
}

func TestOpenCase_ConcurrentOpeningsAreSerialized(t *testing.T) {
	env := newTestEnv(t, utils.SeededSource(3), nil)
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.OpenCase(context.Background(), testSession, "chupacabra")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	st := env.state(t)
	assert.InDelta(t, domain.DefaultStartingBalance-29*n, st.Balance, 1e-9)
	assert.Len(t, st.Inventory, n)
	assert.Equal(t, n, st.Stats.CasesOpened)
}

func TestState_SurvivesNewService(t *testing.T) {
	env := newTestEnv(t, utils.FixedSource(0.3), nil)
	_, err := env.svc.OpenCase(context.Background(), testSession, "mirage")
	require.NoError(t, err)

	cat := catalog.Default()
	other := NewService(env.store, cat, reward.NewGenerator(nil, cat), resolver.New(nil), nil, Options{})
	st, err := other.GetState(context.Background(), testSession)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingBalance-35, st.Balance)
	assert.Len(t, st.Inventory, 1)
}

func TestSellItem(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	st := domain.NewSessionState(testSession, 100)
	keep := entry("keep", domain.RarityCommon, 50)
	sell := entry("sell", domain.RarityRare, 150)
	st.Inventory = []domain.InventoryEntry{keep, sell}
	env.seed(t, st)

	res, err := env.svc.SellItem(context.Background(), testSession, sell.EntryID)

	require.NoError(t, err)
	assert.Equal(t, 150.0, res.Credit)
	assert.Equal(t, 250.0, res.Balance)
	after := env.state(t)
	require.Len(t, after.Inventory, 1)
	assert.Equal(t, keep.EntryID, after.Inventory[0].EntryID)
	assert.Equal(t, []event.Type{event.ItemSold}, env.pub.types())

	_, err = env.svc.SellItem(context.Background(), testSession, sell.EntryID)
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))
	assert.Equal(t, 250.0, env.state(t).Balance)
}

func TestRemoveItemAndClearInventory(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	st := domain.NewSessionState(testSession, 100)
	a, b, c := entry("a", domain.RarityCommon, 50), entry("b", domain.RarityCommon, 50), entry("c", domain.RarityEpic, 400)
	st.Inventory = []domain.InventoryEntry{a, b, c}
	env.seed(t, st)

	require.NoError(t, env.svc.RemoveItem(context.Background(), testSession, b.EntryID))
	after := env.state(t)
	assert.Equal(t, 100.0, after.Balance, "removal grants nothing")
	require.Len(t, after.Inventory, 2)
	assert.Equal(t, a.EntryID, after.Inventory[0].EntryID)
	assert.Equal(t, c.EntryID, after.Inventory[1].EntryID)

	err := env.svc.RemoveItem(context.Background(), testSession, b.EntryID)
	assert.True(t, errors.Is(err, domain.ErrItemNotFound))

	removed, err := env.svc.ClearInventory(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Empty(t, env.state(t).Inventory)
	assert.Equal(t, 100.0, env.state(t).Balance)
}

func TestDeleteSession_DropsCachedState(t *testing.T) {
	// ARRANGE: load the session once so it sits in the cache
	env := newTestEnv(t, nil, nil)
	st := domain.NewSessionState(testSession, 5)
	st.Inventory = []domain.InventoryEntry{entry("a", domain.RarityCommon, 50)}
	env.seed(t, st)
	require.Equal(t, 5.0, env.state(t).Balance)

	// ACT
	err := env.svc.DeleteSession(context.Background(), testSession)

	// ASSERT
	require.NoError(t, err)
	_, loadErr := env.store.Load(context.Background(), testSession)
	assert.True(t, errors.Is(loadErr, domain.ErrSessionNotFound))

	fresh := env.state(t)
	assert.Equal(t, domain.DefaultStartingBalance, fresh.Balance)
	assert.Empty(t, fresh.Inventory)
}

func TestDeleteSession_RejectsInvalidID(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	err := env.svc.DeleteSession(context.Background(), "")

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestResetSession(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	st := domain.NewSessionState(testSession, 5)
	st.Inventory = []domain.InventoryEntry{entry("a", domain.RarityCommon, 50)}
	st.UsedPromoCodes = []string{"WELCOME100"}
	env.seed(t, st)

	fresh, err := env.svc.ResetSession(context.Background(), testSession)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingBalance, fresh.Balance)
	assert.Empty(t, fresh.Inventory)
	assert.Empty(t, fresh.UsedPromoCodes)
	assert.Equal(t, []event.Type{event.SessionReset}, env.pub.types())
}
