package ledger

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/event"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/odds"
)

// upgradeStake is a validated upgrade request against one session state
type upgradeStake struct {
	inputs []domain.InventoryEntry
	items  []domain.Item
	target domain.UpgradeTarget
	quote  odds.Quote
}

// prepareUpgrade validates req against state and prices it. It never
// mutates state, so the same request quotes identically before and at
// settlement.
func (s *service) prepareUpgrade(ctx context.Context, state *domain.SessionState, req UpgradeRequest) (*upgradeStake, error) {
	if len(req.InputIDs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSelection, ErrMsgNoInputs)
	}
	if len(req.InputIDs) > odds.MaxInputItems {
		return nil, fmt.Errorf("%w: "+ErrMsgTooManyInputs, domain.ErrInvalidSelection, odds.MaxInputItems)
	}
	if req.TargetID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSelection, ErrMsgNoTarget)
	}
	if math.IsNaN(req.Bet) || math.IsInf(req.Bet, 0) || req.Bet < 0 {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidBet, domain.ErrInvalidSelection, req.Bet)
	}
	if req.Bet > state.Balance {
		return nil, fmt.Errorf("%w: %w: "+ErrMsgBetOverBalance, domain.ErrInvalidSelection, domain.ErrInsufficientFunds, req.Bet, state.Balance)
	}
	if req.Bet > odds.MaxBet {
		return nil, fmt.Errorf("%w: "+ErrMsgBetOverMax, domain.ErrInvalidSelection, req.Bet, odds.MaxBet)
	}

	stake := &upgradeStake{}
	seen := make(map[uuid.UUID]bool, len(req.InputIDs))
	for _, id := range req.InputIDs {
		if seen[id] {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateInput, domain.ErrInvalidSelection, id)
		}
		seen[id] = true

		idx, ok := state.FindEntry(id)
		if !ok {
			return nil, fmt.Errorf("%w: %w: "+ErrMsgUnknownEntry, domain.ErrInvalidSelection, domain.ErrItemNotFound, id)
		}
		stake.inputs = append(stake.inputs, state.Inventory[idx])
		stake.items = append(stake.items, state.Inventory[idx].Item)
	}

	target, ok := s.findTarget(state, req.TargetID)
	if !ok {
		return nil, fmt.Errorf("%w: %w: "+ErrMsgUnknownTarget, domain.ErrInvalidSelection, domain.ErrTargetNotFound, req.TargetID)
	}
	stake.target = target

	quote, err := odds.NewQuote(ctx, stake.items, req.Bet, target.Item)
	if err != nil {
		return nil, err
	}
	if req.ExpectedChance != nil && !quote.Matches(*req.ExpectedChance) {
		return nil, fmt.Errorf("%w: shown %v, now %v", domain.ErrQuoteMismatch, *req.ExpectedChance, quote.Chance)
	}

	stake.quote = quote
	return stake, nil
}

// QuoteUpgrade prices a request without settling it
func (s *service) QuoteUpgrade(ctx context.Context, sessionID string, req UpgradeRequest) (*odds.Quote, error) {
	state, err := s.read(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stake, err := s.prepareUpgrade(ctx, state, req)
	if err != nil {
		return nil, err
	}
	return &stake.quote, nil
}

// Upgrade settles an attempt: inputs and bet are always consumed, the
// target is added only on a win, and a history record is prepended
func (s *service) Upgrade(ctx context.Context, sessionID string, req UpgradeRequest) (*UpgradeOutcome, error) {
	var out UpgradeOutcome
	var inputIDs []uuid.UUID

	state, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		stake, err := s.prepareUpgrade(ctx, st, req)
		if err != nil {
			return err
		}

		outcome := s.resolver.Resolve(ctx, stake.quote.Chance)
		now := s.now()

		for _, in := range stake.inputs {
			inputIDs = append(inputIDs, in.EntryID)
		}
		st.RemoveEntries(inputIDs...)
		st.Balance -= req.Bet

		result := domain.UpgradeResultLose
		if outcome.Won {
			result = domain.UpgradeResultWin
			entry := domain.NewInventoryEntry(stake.target.Item, domain.SourceUpgrade, now)
			st.AddEntry(entry)
			st.Stats.UpgradesWon++
			st.Stats.RecordWin(entry.Value)
			out.Reward = &entry
		} else {
			st.Stats.UpgradesLost++
		}

		record := domain.UpgradeHistoryRecord{
			ID:         uuid.New(),
			Timestamp:  now,
			Inputs:     stake.items,
			Target:     stake.target.Item,
			BetAmount:  req.Bet,
			TotalValue: stake.quote.StakedValue,
			Chance:     stake.quote.Chance,
			Result:     result,
		}
		st.PushHistory(record)

		out.Quote = stake.quote
		out.Outcome = outcome
		out.Record = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Balance = state.Balance
	out.RevealAfter = domain.UpgradeRevealDelay

	logger.FromContext(ctx).Info(LogMsgUpgradeResolved,
		"session_id", sessionID,
		"target", out.Record.Target.Name,
		"chance", out.Quote.Chance,
		"won", out.Outcome.Won)
	s.publish(ctx, event.UpgradeResolved, sessionID, event.UpgradeResolvedPayloadV1{
		Inputs:     out.Record.Inputs,
		Target:     out.Record.Target,
		Bet:        req.Bet,
		Chance:     out.Quote.Chance,
		Won:        out.Outcome.Won,
		NewBalance: state.Balance,
	})
	return &out, nil
}

// UpgradeHistory returns the attempts, newest first
func (s *service) UpgradeHistory(ctx context.Context, sessionID string) ([]domain.UpgradeHistoryRecord, error) {
	state, err := s.read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.UpgradeHistory, nil
}

// ClearUpgradeHistory empties the attempt log
func (s *service) ClearUpgradeHistory(ctx context.Context, sessionID string) error {
	_, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		st.UpgradeHistory = []domain.UpgradeHistoryRecord{}
		return nil
	})
	return err
}
