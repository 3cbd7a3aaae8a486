package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// ExecuteContract trades five entries of one rarity for one entry of the
// next rarity
func (s *service) ExecuteContract(ctx context.Context, sessionID string, entryIDs []uuid.UUID) (*ContractResult, error) {
	var result ContractResult

	_, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		seen := make(map[uuid.UUID]bool, len(entryIDs))
		inputs := make([]domain.InventoryEntry, 0, len(entryIDs))
		for _, id := range entryIDs {
			if seen[id] {
				return fmt.Errorf("%w: "+ErrMsgDuplicateInput, domain.ErrInvalidSelection, id)
			}
			seen[id] = true

			idx, ok := st.FindEntry(id)
			if !ok {
				return fmt.Errorf("%w: %w: "+ErrMsgUnknownEntry, domain.ErrInvalidSelection, domain.ErrItemNotFound, id)
			}
			inputs = append(inputs, st.Inventory[idx])
		}

		item, err := s.generator.ExecuteContract(ctx, inputs)
		if err != nil {
			return err
		}

		st.RemoveEntries(entryIDs...)
		entry := domain.NewInventoryEntry(*item, domain.SourceContract, s.now())
		st.AddEntry(entry)
		st.Stats.ContractsSigned++

		result.Consumed = inputs
		result.Entry = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgContractSigned,
		"session_id", sessionID,
		"from", result.Consumed[0].Rarity,
		"item", result.Entry.Name)
	s.publish(ctx, event.ContractSigned, sessionID, event.ContractSignedPayloadV1{
		InputRarity: result.Consumed[0].Rarity,
		Item:        result.Entry.Item,
	})
	return &result, nil
}
