package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/config"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/fairness"
	"github.com/osse101/CaseForge_Go/internal/sse"
	"github.com/osse101/CaseForge_Go/internal/storage"
)

func TestInitializeStorage(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		store, err := InitializeStorage(context.Background(), &config.Config{StorageBackend: config.StorageMemory})

		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStore{}, store)
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := InitializeStorage(context.Background(), &config.Config{StorageBackend: "mongo"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"mongo"`)
	})
}

func TestInitializeRandomSources(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantFair bool
		wantErr  bool
	}{
		{"math", config.Config{RNGMode: config.RNGModeMath}, false, false},
		{"crypto", config.Config{RNGMode: config.RNGModeCrypto}, false, false},
		{"fair with seed", config.Config{RNGMode: config.RNGModeFair, FairServerSeed: "seed", FairClientSeed: "client"}, true, false},
		{"fair generates seed", config.Config{RNGMode: config.RNGModeFair, FairClientSeed: "client"}, true, false},
		{"unknown", config.Config{RNGMode: "dice"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := InitializeRandomSources(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rs.Rewards)
			require.NotNil(t, rs.Upgrades)

			v := rs.Rewards.Float64()
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)

			if tt.wantFair {
				require.NotNil(t, rs.Fair)
				assert.Same(t, rs.Fair, rs.Upgrades)
				assert.Equal(t, "client", rs.Fair.ClientSeed())
			} else {
				assert.Nil(t, rs.Fair)
			}
		})
	}
}

func TestInitializeRandomSources_FairSeedChangesPerStart(t *testing.T) {
	cfg := &config.Config{RNGMode: config.RNGModeFair, FairServerSeed: "known-seed"}

	first, err := InitializeRandomSources(cfg)
	require.NoError(t, err)
	second, err := InitializeRandomSources(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, first.Fair.Commitment(), second.Fair.Commitment(),
		"a restart with the same master seed must not reuse the server seed")
	assert.NotEqual(t, fairness.Commitment("known-seed"), first.Fair.Commitment(),
		"the master seed itself is never the server seed")
	assert.Equal(t, uint64(0), second.Fair.Nonce())
}

func TestRandomSources_RotateFair(t *testing.T) {
	// ARRANGE
	rs, err := InitializeRandomSources(&config.Config{RNGMode: config.RNGModeFair, FairServerSeed: "known-seed", FairClientSeed: "client"})
	require.NoError(t, err)
	committed := rs.Fair.Commitment()
	draws := []float64{rs.Rewards.Float64(), rs.Upgrades.Float64()}

	// ACT
	reveal, err := rs.RotateFair()

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, committed, reveal.Commitment)
	assert.True(t, fairness.VerifyCommitment(reveal.ServerSeed, committed))
	assert.Equal(t, uint64(2), reveal.Draws)
	for i, v := range draws {
		assert.True(t, fairness.VerifyDraw(reveal.ServerSeed, "client", uint64(i), v))
	}
	assert.Equal(t, reveal.NextCommitment, rs.Fair.Commitment())
	assert.NotEqual(t, committed, reveal.NextCommitment)
	assert.Equal(t, uint64(0), rs.Fair.Nonce())
}

func TestRandomSources_RotateFairNeedsFairMode(t *testing.T) {
	rs, err := InitializeRandomSources(&config.Config{RNGMode: config.RNGModeCrypto})
	require.NoError(t, err)

	_, err = rs.RotateFair()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterEventHandlers_FeedsLiveHub(t *testing.T) {
	// ARRANGE
	bus, hub := InitializeEventSystem()
	t.Cleanup(hub.Stop)
	RegisterEventHandlers(bus, hub)
	client := hub.Register([]string{sse.EventTypeLiveDrop})
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	// ACT
	err := bus.Publish(context.Background(), event.New(event.CaseOpened, "player-123456", event.CaseOpenedPayloadV1{
		CaseID:   "mirage",
		CaseName: "MIRAGE",
		Item:     domain.Item{Name: "AK-47 | Редлайн", Rarity: domain.RarityRare, Value: 150},
	}, time.Now()))

	// ASSERT
	require.NoError(t, err)
	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, sse.EventTypeLiveDrop, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("live drop was not broadcast")
	}
}

func TestGracefulShutdown(t *testing.T) {
	_, hub := InitializeEventSystem()
	store := storage.NewMemoryStore()

	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{Hub: hub, Store: store})
	})
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"session_a.log", "session_b.log", "session_c.log", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"notes.txt", "session_b.log", "session_c.log"}, names)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("stdout only", func(t *testing.T) {
		f, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "text"})
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("with log dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		f, err := SetupLogger(&config.Config{LogLevel: "debug", LogFormat: "json", LogDir: dir})
		require.NoError(t, err)
		require.NotNil(t, f)
		t.Cleanup(func() { _ = f.Close() })

		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), LogMsgLoggingInitialized)
	})
}
