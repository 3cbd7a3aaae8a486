package odds

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// Quote is the chance of one upgrade attempt, derived only from its inputs
type Quote struct {
	StakedValue float64 `json:"staked_value"`
	TargetValue float64 `json:"target_value"`
	Chance      float64 `json:"chance"`
}

// ComputeChance returns clamp(staked/target*100, MinChance, MaxChance).
// A non-positive target or a negative stake is a data integrity violation
// and yields a zero chance with ErrDataIntegrity.
func ComputeChance(stakedValue, targetValue float64) (float64, error) {
	if math.IsNaN(targetValue) || targetValue <= 0 {
		return 0, fmt.Errorf("%w: "+ErrMsgNonPositiveTarget, domain.ErrDataIntegrity, targetValue)
	}
	if math.IsNaN(stakedValue) || stakedValue < 0 {
		return 0, fmt.Errorf("%w: "+ErrMsgNegativeStake, domain.ErrDataIntegrity, stakedValue)
	}
	return utils.Clamp(stakedValue/targetValue*100, MinChance, MaxChance), nil
}

// StakedValue is the sum of the input item values plus the currency bet.
// The single-item upgrade is the case of one input and a zero bet.
func StakedValue(inputs []domain.Item, bet float64) float64 {
	total := bet
	for _, item := range inputs {
		total += item.Value
	}
	return total
}

// NewQuote prices an attempt. Calling it twice on the same inputs always
// yields the same quote, which is how the displayed chance and the settled
// chance are kept equal.
func NewQuote(ctx context.Context, inputs []domain.Item, bet float64, target domain.Item) (Quote, error) {
	if err := checkRarities(inputs, target); err != nil {
		logger.FromContext(ctx).Error(LogMsgDataIntegrity, "error", err)
		return Quote{}, err
	}

	staked := StakedValue(inputs, bet)
	chance, err := ComputeChance(staked, target.Value)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgDataIntegrity,
			"error", err,
			"target", target.Name,
			"staked_value", staked)
		return Quote{}, err
	}

	return Quote{
		StakedValue: staked,
		TargetValue: target.Value,
		Chance:      chance,
	}, nil
}

// Matches reports whether a client-displayed chance equals this quote
func (q Quote) Matches(expected float64) bool {
	return math.Abs(q.Chance-expected) < 1e-9
}

// MaxBetFor returns the largest bet allowed with the given balance
func MaxBetFor(balance float64) float64 {
	return utils.Clamp(balance, 0, MaxBet)
}

// MultiplyBet applies a multiplier preset to the current bet, capped by
// MaxBetFor(balance)
func MultiplyBet(bet float64, multiplier int, balance float64) float64 {
	if multiplier <= 0 {
		return 0
	}
	return math.Min(bet*float64(multiplier), MaxBetFor(balance))
}

func checkRarities(inputs []domain.Item, target domain.Item) error {
	if !target.Rarity.Valid() {
		return fmt.Errorf("%w: "+ErrMsgUnknownRarity, domain.ErrDataIntegrity, target.Name, target.Rarity)
	}
	for _, item := range inputs {
		if !item.Rarity.Valid() {
			return fmt.Errorf("%w: "+ErrMsgUnknownRarity, domain.ErrDataIntegrity, item.Name, item.Rarity)
		}
	}
	return nil
}
