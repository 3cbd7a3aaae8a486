// Package storetest holds the behavior every storage.Store backend must share.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/storage"
)

// Run exercises store against the storage.Store contract. Values are
// compared as JSON because some backends normalize formatting.
func Run(t *testing.T, store storage.Store) {
	t.Helper()
	ctx := context.Background()

	newID := func() string { return "test-" + uuid.NewString() }

	t.Run("load missing session", func(t *testing.T) {
		_, err := store.Load(ctx, newID())
		assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
	})

	t.Run("save and load", func(t *testing.T) {
		id := newID()
		values := map[string][]byte{
			storage.KeyBalance:     []byte(`1723.55`),
			storage.KeyDailyStreak: []byte(`3`),
			storage.KeyInventory:   []byte(`[{"name":"a"},{"name":"b"}]`),
		}
		require.NoError(t, store.Save(ctx, id, values))

		got, err := store.Load(ctx, id)
		require.NoError(t, err)
		assertSameValues(t, values, got)
	})

	t.Run("save replaces every key", func(t *testing.T) {
		id := newID()
		require.NoError(t, store.Save(ctx, id, map[string][]byte{
			storage.KeyBalance:     []byte(`10`),
			storage.KeyDailyStreak: []byte(`1`),
		}))
		require.NoError(t, store.Save(ctx, id, map[string][]byte{
			storage.KeyBalance: []byte(`20`),
		}))

		got, err := store.Load(ctx, id)
		require.NoError(t, err)
		assertSameValues(t, map[string][]byte{storage.KeyBalance: []byte(`20`)}, got)
	})

	t.Run("delete", func(t *testing.T) {
		id := newID()
		require.NoError(t, store.Save(ctx, id, map[string][]byte{storage.KeyBalance: []byte(`1`)}))
		require.NoError(t, store.Delete(ctx, id))

		_, err := store.Load(ctx, id)
		assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
		assert.NoError(t, store.Delete(ctx, id), "deleting twice is not an error")
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		a, b := newID(), newID()
		require.NoError(t, store.Save(ctx, a, map[string][]byte{storage.KeyBalance: []byte(`1`)}))
		require.NoError(t, store.Save(ctx, b, map[string][]byte{storage.KeyBalance: []byte(`2`)}))

		got, err := store.Load(ctx, a)
		require.NoError(t, err)
		assert.JSONEq(t, `1`, string(got[storage.KeyBalance]))
	})

	t.Run("codec round trip", func(t *testing.T) {
		id := newID()
		codec := storage.Codec{StartingBalance: domain.DefaultStartingBalance}
		state := SampleState(id)

		values, err := codec.Encode(state)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, id, values))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		decoded, err := codec.Decode(id, loaded)
		require.NoError(t, err)

		assert.Equal(t, state.Balance, decoded.Balance)
		assert.Equal(t, state.DailyStreak, decoded.DailyStreak)
		assert.Equal(t, state.UsedPromoCodes, decoded.UsedPromoCodes)
		require.Len(t, decoded.Inventory, len(state.Inventory))
		for i := range state.Inventory {
			assert.Equal(t, state.Inventory[i].EntryID, decoded.Inventory[i].EntryID)
			assert.Equal(t, state.Inventory[i].Value, decoded.Inventory[i].Value)
		}
		require.NotNil(t, decoded.LastDailyClaim)
		assert.True(t, state.LastDailyClaim.Equal(*decoded.LastDailyClaim))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func assertSameValues(t *testing.T, want, got map[string][]byte) {
	t.Helper()
	require.Len(t, got, len(want))
	for k, v := range want {
		assert.JSONEq(t, string(v), string(got[k]), "key %s", k)
	}
}
