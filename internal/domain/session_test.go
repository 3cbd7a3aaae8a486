package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(name string, value float64) InventoryEntry {
	return NewInventoryEntry(Item{ID: name, Name: name, Rarity: RarityCommon, Value: value}, "test", time.Now())
}

func TestSessionState_RemoveEntries(t *testing.T) {
	s := NewSessionState("s1", DefaultStartingBalance)
	a, b, c := newTestEntry("a", 1), newTestEntry("b", 2), newTestEntry("c", 3)
	s.AddEntry(a)
	s.AddEntry(b)
	s.AddEntry(c)

	removed := s.RemoveEntries(b.EntryID, uuid.New())

	assert.Equal(t, 1, removed)
	require.Len(t, s.Inventory, 2)
	assert.Equal(t, a.EntryID, s.Inventory[0].EntryID)
	assert.Equal(t, c.EntryID, s.Inventory[1].EntryID)
}

func TestSessionState_Clone_IsDeep(t *testing.T) {
	claim := time.Now()
	s := NewSessionState("s1", 100)
	s.AddEntry(newTestEntry("a", 1))
	s.UsedPromoCodes = append(s.UsedPromoCodes, "WELCOME100")
	s.LastDailyClaim = &claim
	s.PushHistory(UpgradeHistoryRecord{ID: uuid.New(), Inputs: []Item{{Name: "x"}}})

	c := s.Clone()
	c.Balance = 0
	c.Inventory[0].Value = 999
	c.UsedPromoCodes[0] = "CHANGED"
	c.UpgradeHistory[0].Inputs[0].Name = "changed"
	*c.LastDailyClaim = claim.Add(time.Hour)

	assert.Equal(t, 100.0, s.Balance)
	assert.Equal(t, 1.0, s.Inventory[0].Value)
	assert.Equal(t, "WELCOME100", s.UsedPromoCodes[0])
	assert.Equal(t, "x", s.UpgradeHistory[0].Inputs[0].Name)
	assert.True(t, s.LastDailyClaim.Equal(claim))
}

func TestSessionState_PushHistory_CapsAndOrders(t *testing.T) {
	s := NewSessionState("s1", 0)
	var last uuid.UUID
	for i := 0; i < MaxUpgradeHistory+10; i++ {
		last = uuid.New()
		s.PushHistory(UpgradeHistoryRecord{ID: last})
	}

	assert.Len(t, s.UpgradeHistory, MaxUpgradeHistory)
	assert.Equal(t, last, s.UpgradeHistory[0].ID, "newest record comes first")
}

func TestSessionState_HasRedeemed(t *testing.T) {
	s := NewSessionState("s1", 0)
	assert.False(t, s.HasRedeemed("WELCOME100"))
	s.UsedPromoCodes = append(s.UsedPromoCodes, "WELCOME100")
	assert.True(t, s.HasRedeemed("WELCOME100"))
}

func TestStats_RecordWin(t *testing.T) {
	var st Stats
	st.RecordWin(50)
	st.RecordWin(20)
	assert.Equal(t, 70.0, st.TotalWinnings)
	assert.Equal(t, 50.0, st.BiggestWin)
}
