package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
)

// targetsFor lists catalog targets followed by the session's custom ones
func (s *service) targetsFor(state *domain.SessionState) []domain.UpgradeTarget {
	targets := s.catalog.DefaultTargets()
	return append(targets, state.CustomTargets...)
}

func (s *service) findTarget(state *domain.SessionState, targetID string) (domain.UpgradeTarget, bool) {
	for _, t := range s.targetsFor(state) {
		if t.ID == targetID {
			return t, true
		}
	}
	return domain.UpgradeTarget{}, false
}

// UpgradeTargets returns every target the session can upgrade into
func (s *service) UpgradeTargets(ctx context.Context, sessionID string) ([]domain.UpgradeTarget, error) {
	state, err := s.read(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.targetsFor(state), nil
}

// AddCustomTarget imports a market item as a custom target. Adding the same
// item twice returns the existing target.
func (s *service) AddCustomTarget(ctx context.Context, sessionID, marketID string) (*domain.UpgradeTarget, error) {
	item, ok := s.catalog.MarketItem(marketID)
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownMarketItem, domain.ErrTargetNotFound, marketID)
	}
	target := catalog.TargetFromMarket(item)

	_, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		for _, t := range st.CustomTargets {
			if t.ID == target.ID {
				return nil
			}
		}
		st.CustomTargets = append(st.CustomTargets, target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// RemoveCustomTarget drops a custom target. Catalog targets cannot be removed.
func (s *service) RemoveCustomTarget(ctx context.Context, sessionID, targetID string) error {
	_, err := s.mutate(ctx, sessionID, func(st *domain.SessionState) error {
		kept := st.CustomTargets[:0:0]
		for _, t := range st.CustomTargets {
			if t.ID != targetID {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(st.CustomTargets) {
			return fmt.Errorf("%w: "+ErrMsgCustomTargetAbsent, domain.ErrTargetNotFound, targetID)
		}
		st.CustomTargets = kept
		return nil
	})
	return err
}
