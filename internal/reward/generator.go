package reward

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/utils"
)

// CaseResult is one opened case: the reward plus the reel that shows it
type CaseResult struct {
	Case        catalog.CaseDef `json:"case"`
	Item        domain.Item     `json:"item"`
	Reel        []domain.Item   `json:"reel"`
	WinnerIndex int             `json:"winner_index"`
}

// Generator produces rewards for cases, contracts and the daily bonus
type Generator struct {
	src     utils.RandomSource
	catalog *catalog.Catalog
}

// NewGenerator creates a Generator. A nil source falls back to utils.MathSource.
func NewGenerator(src utils.RandomSource, cat *catalog.Catalog) *Generator {
	if src == nil {
		src = utils.MathSource()
	}
	return &Generator{src: src, catalog: cat}
}

// RollTier maps a uniform draw in [0,1) to a drop tier
func RollTier(r float64) domain.Rarity {
	switch {
	case r > LegendaryThreshold:
		return domain.RarityLegendary
	case r > EpicThreshold:
		return domain.RarityEpic
	case r > RareThreshold:
		return domain.RarityRare
	default:
		return domain.RarityCommon
	}
}

// TierProbability returns the chance that one case draw lands on a tier,
// rounded to four decimals for display
func TierProbability(r domain.Rarity) float64 {
	var p float64
	switch r {
	case domain.RarityLegendary:
		p = 1 - LegendaryThreshold
	case domain.RarityEpic:
		p = LegendaryThreshold - EpicThreshold
	case domain.RarityRare:
		p = EpicThreshold - RareThreshold
	case domain.RarityCommon:
		p = RareThreshold
	}
	return math.Round(p*1e4) / 1e4
}

// rollItem draws a tier and then a uniform item from that tier's pool
func (g *Generator) rollItem() (domain.Item, error) {
	return g.itemFromTier(RollTier(g.src.Float64()))
}

func (g *Generator) itemFromTier(r domain.Rarity) (domain.Item, error) {
	pool := g.catalog.Pool(r)
	if len(pool) == 0 {
		return domain.Item{}, fmt.Errorf("%w: empty %s pool", domain.ErrDataIntegrity, r)
	}
	return g.catalog.ItemAt(r, utils.IntBetween(g.src.Float64(), 0, len(pool)-1))
}

// OpenCase draws the reward for one case. The reward is decided first; the
// reel is filled around it and carries no logic.
func (g *Generator) OpenCase(ctx context.Context, def catalog.CaseDef) (*CaseResult, error) {
	item, err := g.rollItem()
	if err != nil {
		return nil, err
	}

	winner := utils.IntBetween(g.src.Float64(), WinnerSlotMin, WinnerSlotMax)
	reel := make([]domain.Item, ReelLength)
	for i := range reel {
		if i == winner {
			reel[i] = item
			continue
		}
		filler, err := g.rollItem()
		if err != nil {
			return nil, err
		}
		reel[i] = filler
	}

	logger.FromContext(ctx).Info(LogMsgCaseOpened,
		"case", def.ID,
		"rarity", item.Rarity,
		"item", item.Name)

	return &CaseResult{
		Case:        def,
		Item:        item,
		Reel:        reel,
		WinnerIndex: winner,
	}, nil
}

// ContractEligible reports whether inputs can be traded up
func ContractEligible(inputs []domain.InventoryEntry) bool {
	return checkContract(inputs) == nil
}

func checkContract(inputs []domain.InventoryEntry) error {
	if len(inputs) != ContractInputCount {
		return fmt.Errorf("%w: "+ErrMsgWrongInputCount, domain.ErrInvalidSelection, ContractInputCount, len(inputs))
	}
	rarity := inputs[0].Rarity
	for _, in := range inputs[1:] {
		if in.Rarity != rarity {
			return fmt.Errorf("%w: %s", domain.ErrInvalidSelection, ErrMsgMixedRarity)
		}
	}
	if _, ok := rarity.Next(); !ok {
		return fmt.Errorf("%w: %s", domain.ErrInvalidSelection, ErrMsgTopTier)
	}
	return nil
}

// ExecuteContract produces one item of the tier above the inputs' shared
// rarity. It does not touch the inputs; the caller consumes them.
func (g *Generator) ExecuteContract(ctx context.Context, inputs []domain.InventoryEntry) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if err := checkContract(inputs); err != nil {
		log.Debug(LogMsgContractRejected, "error", err, "inputs", len(inputs))
		return nil, err
	}

	next, _ := inputs[0].Rarity.Next()
	item, err := g.itemFromTier(next)
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgContractExecuted, "from", inputs[0].Rarity, "to", next, "item", item.Name)
	return &item, nil
}

// DailyBonusAmount draws a bonus in [DailyBonusMin, DailyBonusMax]
func (g *Generator) DailyBonusAmount() int {
	return utils.IntBetween(g.src.Float64(), DailyBonusMin, DailyBonusMax)
}
