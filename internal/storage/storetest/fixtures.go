package storetest

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// SampleState returns a session with every field populated
func SampleState(sessionID string) *domain.SessionState {
	claimed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	state := domain.NewSessionState(sessionID, 1234.56)
	state.Inventory = []domain.InventoryEntry{
		{
			EntryID:    uuid.New(),
			Item:       domain.Item{ID: "rare-0", Name: "AK-47 | Редлайн", Rarity: domain.RarityRare, Value: 150, Icon: "🔫"},
			AcquiredAt: claimed,
			Source:     "DUST 2",
		},
		{
			EntryID:    uuid.New(),
			Item:       domain.Item{ID: "market-3", Name: "M4A4 | Howl", Rarity: domain.RarityLegendary, Value: 0.1 + 0.2, Icon: "🔫"},
			AcquiredAt: claimed.Add(time.Minute),
			Source:     domain.SourceUpgrade,
		},
	}
	state.UpgradeHistory = []domain.UpgradeHistoryRecord{
		{
			ID:         uuid.New(),
			Timestamp:  claimed,
			Inputs:     []domain.Item{{ID: "common-0", Name: "Glock | Выцвет", Rarity: domain.RarityCommon, Value: 50}},
			Target:     domain.Item{ID: "epic-0", Name: "AWP | Азимов", Rarity: domain.RarityEpic, Value: 400},
			BetAmount:  25,
			TotalValue: 75,
			Chance:     18.75,
			Result:     domain.UpgradeResultLose,
		},
	}
	state.UsedPromoCodes = []string{"WELCOME100", "LUCKY777"}
	state.LastDailyClaim = &claimed
	state.DailyStreak = 4
	state.CustomTargets = []domain.UpgradeTarget{
		{Item: domain.Item{ID: "market-14", Name: "AWP | Dragon Lore", Rarity: domain.RarityLegendary, Value: 15000}, Grade: domain.GradeCovert, Custom: true},
	}
	state.Stats = domain.Stats{CasesOpened: 3, TotalSpent: 87, TotalWinnings: 250, BiggestWin: 150, UpgradesLost: 1}
	return state
}
