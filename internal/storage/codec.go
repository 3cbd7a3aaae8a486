package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// AllKeys lists every key Encode produces
func AllKeys() []string {
	return []string{
		KeyBalance,
		KeyInventory,
		KeyUpgradeHistory,
		KeyUsedPromoCodes,
		KeyLastDailyClaim,
		KeyDailyStreak,
		KeyCustomTargets,
		KeyStats,
	}
}

// Codec converts a SessionState to and from its keyed values
type Codec struct {
	// StartingBalance fills a missing balance key
	StartingBalance float64
}

// Encode splits state into one JSON value per key
func (c Codec) Encode(state *domain.SessionState) (map[string][]byte, error) {
	fields := map[string]any{
		KeyBalance:        state.Balance,
		KeyInventory:      nonNil(state.Inventory),
		KeyUpgradeHistory: nonNil(state.UpgradeHistory),
		KeyUsedPromoCodes: nonNil(state.UsedPromoCodes),
		KeyLastDailyClaim: state.LastDailyClaim,
		KeyDailyStreak:    state.DailyStreak,
		KeyCustomTargets:  nonNil(state.CustomTargets),
		KeyStats:          state.Stats,
	}

	values := make(map[string][]byte, len(fields))
	for key, v := range fields {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgEncodeFailed+": %v", domain.ErrDataIntegrity, key, err)
		}
		values[key] = data
	}
	return values, nil
}

// Decode rebuilds a SessionState. Missing keys keep the defaults of a new
// session; a value that does not parse is a data integrity error.
func (c Codec) Decode(sessionID string, values map[string][]byte) (*domain.SessionState, error) {
	state := domain.NewSessionState(sessionID, c.StartingBalance)

	var lastClaim *time.Time
	targets := map[string]any{
		KeyBalance:        &state.Balance,
		KeyInventory:      &state.Inventory,
		KeyUpgradeHistory: &state.UpgradeHistory,
		KeyUsedPromoCodes: &state.UsedPromoCodes,
		KeyLastDailyClaim: &lastClaim,
		KeyDailyStreak:    &state.DailyStreak,
		KeyCustomTargets:  &state.CustomTargets,
		KeyStats:          &state.Stats,
	}

	for key, dst := range targets {
		data, ok := values[key]
		if !ok || len(data) == 0 {
			continue
		}
		if err := json.Unmarshal(data, dst); err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgDecodeFailed+": %v", domain.ErrDataIntegrity, key, err)
		}
	}
	state.LastDailyClaim = lastClaim

	if state.Inventory == nil {
		state.Inventory = []domain.InventoryEntry{}
	}
	if state.UpgradeHistory == nil {
		state.UpgradeHistory = []domain.UpgradeHistoryRecord{}
	}
	if state.UsedPromoCodes == nil {
		state.UsedPromoCodes = []string{}
	}
	if state.CustomTargets == nil {
		state.CustomTargets = []domain.UpgradeTarget{}
	}
	if len(state.UpgradeHistory) > domain.MaxUpgradeHistory {
		state.UpgradeHistory = state.UpgradeHistory[:domain.MaxUpgradeHistory]
	}
	return state, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
