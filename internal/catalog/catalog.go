package catalog

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

// CaseDef is a purchasable case
type CaseDef struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Price     float64 `json:"price" yaml:"price"`
	ItemCount int     `json:"item_count" yaml:"item_count"`
	IsNew     bool    `json:"is_new" yaml:"is_new"`
}

// PoolItem is one name/icon pair a tier can drop
type PoolItem struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// PromoDef is a redeemable code. Percent codes grant floor(balance*Percent)
// instead of a fixed Reward.
type PromoDef struct {
	Code        string  `json:"code" yaml:"code"`
	Reward      float64 `json:"reward" yaml:"reward"`
	Percent     float64 `json:"percent,omitempty" yaml:"percent"`
	Description string  `json:"description" yaml:"description"`
	Hidden      bool    `json:"-" yaml:"hidden"`
}

// Amount returns what the code grants at the given balance
func (p PromoDef) Amount(balance float64) float64 {
	if p.Percent > 0 {
		return math.Floor(balance * p.Percent)
	}
	return p.Reward
}

// MarketItem is an item admins can add as a custom upgrade target
type MarketItem struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	WeaponType string  `json:"weapon_type" yaml:"weapon_type"`
	Grade      string  `json:"grade" yaml:"grade"`
	Price      float64 `json:"price" yaml:"price"`
}

// Catalog is the static game data every session reads
type Catalog struct {
	Cases      []CaseDef
	Pools      [domain.RarityCount][]PoolItem
	TierPrices [domain.RarityCount]float64
	Promos     []PromoDef
	Market     []MarketItem
}

// Default returns the built-in catalog
func Default() *Catalog {
	c := &Catalog{
		Cases:      append([]CaseDef(nil), defaultCases...),
		TierPrices: defaultTierPrices,
		Promos:     append([]PromoDef(nil), defaultPromos...),
		Market:     append([]MarketItem(nil), defaultMarket...),
	}
	for i := range defaultPools {
		c.Pools[i] = append([]PoolItem(nil), defaultPools[i]...)
	}
	return c
}

// Case looks up a case by id
func (c *Catalog) Case(id string) (CaseDef, bool) {
	for _, def := range c.Cases {
		if def.ID == id {
			return def, true
		}
	}
	return CaseDef{}, false
}

// Pool returns the items a tier can drop
func (c *Catalog) Pool(r domain.Rarity) []PoolItem {
	idx, ok := r.Index()
	if !ok {
		return nil
	}
	return c.Pools[idx]
}

// TierPrice returns the value assigned to generated items of a tier
func (c *Catalog) TierPrice(r domain.Rarity) float64 {
	idx, ok := r.Index()
	if !ok {
		return 0
	}
	return c.TierPrices[idx]
}

// ItemAt builds the catalog item at position i of a tier's pool
func (c *Catalog) ItemAt(r domain.Rarity, i int) (domain.Item, error) {
	pool := c.Pool(r)
	if i < 0 || i >= len(pool) {
		return domain.Item{}, fmt.Errorf("%w: no item %d in %s pool", domain.ErrDataIntegrity, i, r)
	}
	return domain.Item{
		ID:     fmt.Sprintf("%s-%d", r, i),
		Name:   pool[i].Name,
		Rarity: r,
		Value:  c.TierPrice(r),
		Icon:   pool[i].Icon,
	}, nil
}

// NormalizePromoCode trims and upper-cases a code the way players type it.
// A Caser keeps state, so each call gets its own.
func NormalizePromoCode(code string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}

// Promo looks up a code after normalization
func (c *Catalog) Promo(code string) (PromoDef, bool) {
	code = NormalizePromoCode(code)
	for _, p := range c.Promos {
		if p.Code == code {
			return p, true
		}
	}
	return PromoDef{}, false
}

// ListedPromos returns the codes shown on the promo page
func (c *Catalog) ListedPromos() []PromoDef {
	out := make([]PromoDef, 0, len(c.Promos))
	for _, p := range c.Promos {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	return out
}

// MarketItem looks up a market entry by id
func (c *Catalog) MarketItem(id string) (MarketItem, bool) {
	for _, m := range c.Market {
		if m.ID == id {
			return m, true
		}
	}
	return MarketItem{}, false
}

// DefaultMarketPrice is used when a market entry has no price
const DefaultMarketPrice = 100

// TargetFromMarket converts a market entry into a custom upgrade target
func TargetFromMarket(m MarketItem) domain.UpgradeTarget {
	price := math.Round(m.Price)
	if price <= 0 {
		price = DefaultMarketPrice
	}
	name := m.Name
	if name == "" {
		name = "Unknown Item"
	}
	return domain.UpgradeTarget{
		Item: domain.Item{
			ID:     "market-" + m.ID,
			Name:   name,
			Rarity: domain.RarityFromMarketGrade(m.Grade),
			Value:  price,
			Icon:   IconGun,
		},
		Grade:  m.Grade,
		Custom: true,
	}
}

// DefaultTargets returns every pool item as an upgrade target
func (c *Catalog) DefaultTargets() []domain.UpgradeTarget {
	var out []domain.UpgradeTarget
	for _, r := range domain.AllRarities() {
		for i := range c.Pool(r) {
			item, err := c.ItemAt(r, i)
			if err != nil {
				continue
			}
			out = append(out, domain.UpgradeTarget{Item: item})
		}
	}
	return out
}

// Validate checks the invariants the engine relies on
func (c *Catalog) Validate() error {
	var problems []string

	if len(c.Cases) == 0 {
		problems = append(problems, "no cases defined")
	}
	seen := make(map[string]bool)
	for _, def := range c.Cases {
		if def.ID == "" {
			problems = append(problems, fmt.Sprintf("case %q has no id", def.Name))
		}
		if seen[def.ID] {
			problems = append(problems, fmt.Sprintf("duplicate case id %q", def.ID))
		}
		seen[def.ID] = true
		if def.Price <= 0 {
			problems = append(problems, fmt.Sprintf("case %q has non-positive price", def.ID))
		}
	}

	for i, r := range domain.AllRarities() {
		if len(c.Pools[i]) == 0 {
			problems = append(problems, fmt.Sprintf("empty %s pool", r))
		}
		if c.TierPrices[i] <= 0 {
			problems = append(problems, fmt.Sprintf("non-positive %s tier price", r))
		}
	}

	codes := make(map[string]bool)
	for _, p := range c.Promos {
		if p.Code != NormalizePromoCode(p.Code) || p.Code == "" {
			problems = append(problems, fmt.Sprintf("promo code %q is not normalized", p.Code))
		}
		if codes[p.Code] {
			problems = append(problems, fmt.Sprintf("duplicate promo code %q", p.Code))
		}
		codes[p.Code] = true
		if p.Reward < 0 || p.Percent < 0 || (p.Reward == 0 && p.Percent == 0) {
			problems = append(problems, fmt.Sprintf("promo %q grants nothing", p.Code))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: "+ErrMsgInvalidCatalog, domain.ErrDataIntegrity, strings.Join(problems, "; "))
	}
	return nil
}
