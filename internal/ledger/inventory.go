package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// OpenCase debits the case price, then rolls and stores the reward
func (s *service) OpenCase(ctx context.Context, sessionID, caseID string) (*OpenCaseResult, error) {
	def, ok := s.catalog.Case(caseID)
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownCase, domain.ErrCaseNotFound, caseID)
	}

	var result OpenCaseResult
	state, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		if st.Balance < def.Price {
			return fmt.Errorf("%w: "+ErrMsgCasePrice, domain.ErrInsufficientFunds, def.Price, st.Balance)
		}
		st.Balance -= def.Price

		rolled, err := s.generator.OpenCase(ctx, def)
		if err != nil {
			return err
		}

		entry := domain.NewInventoryEntry(rolled.Item, def.Name, s.now())
		st.AddEntry(entry)
		st.Stats.CasesOpened++
		st.Stats.TotalSpent += def.Price
		st.Stats.RecordWin(entry.Value)

		result.CaseResult = rolled
		result.Entry = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Balance = state.Balance
	result.RevealAfter = domain.CaseRevealDelay

	logger.FromContext(ctx).Info(LogMsgCaseOpened,
		"session_id", sessionID,
		"case", def.ID,
		"item", result.Entry.Name,
		"rarity", result.Entry.Rarity)
	s.publish(ctx, event.CaseOpened, sessionID, event.CaseOpenedPayloadV1{
		CaseID:     def.ID,
		CaseName:   def.Name,
		Price:      def.Price,
		Item:       result.Entry.Item,
		NewBalance: state.Balance,
	})
	return &result, nil
}

// SellItem credits the entry's value and removes it in the same save
func (s *service) SellItem(ctx context.Context, sessionID string, entryID uuid.UUID) (*SellResult, error) {
	var sold domain.InventoryEntry
	state, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		idx, ok := st.FindEntry(entryID)
		if !ok {
			return fmt.Errorf("%w: "+ErrMsgUnknownEntry, domain.ErrItemNotFound, entryID)
		}
		sold = st.Inventory[idx]
		st.Balance += sold.Value
		st.RemoveEntries(entryID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemSold, "session_id", sessionID, "item", sold.Name, "value", sold.Value)
	s.publish(ctx, event.ItemSold, sessionID, event.ItemSoldPayloadV1{Item: sold.Item, NewBalance: state.Balance})

	return &SellResult{Entry: sold, Credit: sold.Value, Balance: state.Balance}, nil
}

// RemoveItem discards an entry without credit
func (s *service) RemoveItem(ctx context.Context, sessionID string, entryID uuid.UUID) error {
	_, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		if st.RemoveEntries(entryID) == 0 {
			return fmt.Errorf("%w: "+ErrMsgUnknownEntry, domain.ErrItemNotFound, entryID)
		}
		return nil
	})
	return err
}

// ClearInventory discards every entry without credit and returns how many
// were removed
func (s *service) ClearInventory(ctx context.Context, sessionID string) (int, error) {
	var removed int
	state, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		removed = len(st.Inventory)
		st.Inventory = []domain.InventoryEntry{}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.publish(ctx, event.InventoryCleared, sessionID, event.BalancePayloadV1{Balance: state.Balance, Removed: removed})
	return removed, nil
}
