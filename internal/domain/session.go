package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stats holds per-session profile counters
type Stats struct {
	CasesOpened     int     `json:"cases_opened"`
	TotalSpent      float64 `json:"total_spent"`
	TotalWinnings   float64 `json:"total_winnings"`
	BiggestWin      float64 `json:"biggest_win"`
	UpgradesWon     int     `json:"upgrades_won"`
	UpgradesLost    int     `json:"upgrades_lost"`
	ContractsSigned int     `json:"contracts_signed"`
}

// RecordWin adds value to the winnings counters
func (s *Stats) RecordWin(value float64) {
	s.TotalWinnings += value
	if value > s.BiggestWin {
		s.BiggestWin = value
	}
}

// SessionState is everything one player owns. A single session is the only
// writer of its state.
type SessionState struct {
	SessionID      string                 `json:"session_id"`
	Balance        float64                `json:"balance"`
	Inventory      []InventoryEntry       `json:"inventory"`
	UpgradeHistory []UpgradeHistoryRecord `json:"upgrade_history"`
	UsedPromoCodes []string               `json:"used_promocodes"`
	LastDailyClaim *time.Time             `json:"last_daily_claim,omitempty"`
	DailyStreak    int                    `json:"daily_streak"`
	CustomTargets  []UpgradeTarget        `json:"custom_targets"`
	Stats          Stats                  `json:"stats"`
}

// NewSessionState returns the state of a player who has never played
func NewSessionState(sessionID string, startingBalance float64) *SessionState {
	return &SessionState{
		SessionID:      sessionID,
		Balance:        startingBalance,
		Inventory:      []InventoryEntry{},
		UpgradeHistory: []UpgradeHistoryRecord{},
		UsedPromoCodes: []string{},
		CustomTargets:  []UpgradeTarget{},
	}
}

// Clone returns a deep copy so a failed action never leaks partial changes
func (s *SessionState) Clone() *SessionState {
	if s == nil {
		return nil
	}
	c := *s
	c.Inventory = append([]InventoryEntry(nil), s.Inventory...)
	c.UsedPromoCodes = append([]string(nil), s.UsedPromoCodes...)
	c.CustomTargets = append([]UpgradeTarget(nil), s.CustomTargets...)
	c.UpgradeHistory = make([]UpgradeHistoryRecord, len(s.UpgradeHistory))
	for i, rec := range s.UpgradeHistory {
		rec.Inputs = append([]Item(nil), rec.Inputs...)
		c.UpgradeHistory[i] = rec
	}
	if s.LastDailyClaim != nil {
		t := *s.LastDailyClaim
		c.LastDailyClaim = &t
	}
	return &c
}

// FindEntry returns the index of the entry with the given id
func (s *SessionState) FindEntry(id uuid.UUID) (int, bool) {
	for i := range s.Inventory {
		if s.Inventory[i].EntryID == id {
			return i, true
		}
	}
	return -1, false
}

// AddEntry appends an entry to the inventory
func (s *SessionState) AddEntry(entry InventoryEntry) {
	s.Inventory = append(s.Inventory, entry)
}

// RemoveEntries deletes every entry whose id is in ids and keeps the order of
// the rest. It returns the number of entries removed.
func (s *SessionState) RemoveEntries(ids ...uuid.UUID) int {
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.Inventory[:0:0]
	for _, e := range s.Inventory {
		if _, ok := drop[e.EntryID]; ok {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(s.Inventory) - len(kept)
	s.Inventory = kept
	return removed
}

// HasRedeemed reports whether code was already used by this session
func (s *SessionState) HasRedeemed(code string) bool {
	for _, used := range s.UsedPromoCodes {
		if used == code {
			return true
		}
	}
	return false
}

// PushHistory prepends rec and evicts the oldest records beyond the cap
func (s *SessionState) PushHistory(rec UpgradeHistoryRecord) {
	s.UpgradeHistory = append([]UpgradeHistoryRecord{rec}, s.UpgradeHistory...)
	if len(s.UpgradeHistory) > MaxUpgradeHistory {
		s.UpgradeHistory = s.UpgradeHistory[:MaxUpgradeHistory]
	}
}

// InventoryValue sums the value of every owned entry
func (s *SessionState) InventoryValue() float64 {
	var total float64
	for _, e := range s.Inventory {
		total += e.Value
	}
	return total
}
