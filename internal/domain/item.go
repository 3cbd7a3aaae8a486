package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog item. Value drives odds and is never negative.
type Item struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rarity Rarity  `json:"rarity"`
	Value  float64 `json:"value"`
	Icon   string  `json:"icon"`
}

// InventoryEntry is an owned copy of an item
type InventoryEntry struct {
	EntryID uuid.UUID `json:"entry_id"`
	Item
	AcquiredAt time.Time `json:"acquired_at"`
	Source     string    `json:"source"` // Case name, SourceUpgrade or SourceContract
}

// NewInventoryEntry wraps item in a fresh entry
func NewInventoryEntry(item Item, source string, now time.Time) InventoryEntry {
	return InventoryEntry{
		EntryID:    uuid.New(),
		Item:       item,
		AcquiredAt: now,
		Source:     source,
	}
}

// UpgradeTarget is an item offered on the upgrade wheel
type UpgradeTarget struct {
	Item
	Grade  string `json:"grade,omitempty"`
	Custom bool   `json:"custom"`
}

// UpgradeResult is the logged result of an upgrade attempt
type UpgradeResult string

const (
	UpgradeResultWin  UpgradeResult = "win"
	UpgradeResultLose UpgradeResult = "lose"
)

// UpgradeHistoryRecord is an immutable log entry of one upgrade attempt
type UpgradeHistoryRecord struct {
	ID         uuid.UUID     `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Inputs     []Item        `json:"input_items"`
	Target     Item          `json:"target_item"`
	BetAmount  float64       `json:"bet_amount"`
	TotalValue float64       `json:"total_value"`
	Chance     float64       `json:"chance"`
	Result     UpgradeResult `json:"result"`
}

// Won reports whether the attempt was won
func (r UpgradeHistoryRecord) Won() bool {
	return r.Result == UpgradeResultWin
}
