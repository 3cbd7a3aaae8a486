package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseForge_Go/internal/domain"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Cases, 10)

	dust, ok := c.Case("dust2")
	require.True(t, ok)
	assert.Equal(t, 1355.0, dust.Price)

	_, ok = c.Case("missing")
	assert.False(t, ok)
}

func TestDefault_IsIndependentCopy(t *testing.T) {
	a := Default()
	a.Cases[0].Price = 1
	a.Pools[0][0].Name = "changed"

	b := Default()
	assert.Equal(t, 29.0, b.Cases[0].Price)
	assert.NotEqual(t, "changed", b.Pools[0][0].Name)
}

func TestTierPrices(t *testing.T) {
	c := Default()
	assert.Equal(t, 50.0, c.TierPrice(domain.RarityCommon))
	assert.Equal(t, 150.0, c.TierPrice(domain.RarityRare))
	assert.Equal(t, 400.0, c.TierPrice(domain.RarityEpic))
	assert.Equal(t, 1200.0, c.TierPrice(domain.RarityLegendary))
	assert.Equal(t, 0.0, c.TierPrice("mythic"))
}

func TestItemAt(t *testing.T) {
	c := Default()

	item, err := c.ItemAt(domain.RarityEpic, 0)
	require.NoError(t, err)
	assert.Equal(t, "AWP | Азимов", item.Name)
	assert.Equal(t, domain.RarityEpic, item.Rarity)
	assert.Equal(t, 400.0, item.Value)
	assert.Equal(t, "epic-0", item.ID)

	_, err = c.ItemAt(domain.RarityEpic, 99)
	assert.True(t, errors.Is(err, domain.ErrDataIntegrity))
}

func TestPromo(t *testing.T) {
	c := Default()

	tests := []struct {
		input  string
		found  bool
		amount float64
	}{
		{"WELCOME100", true, 100},
		{"  welcome100 ", true, 100},
		{"lucky777", true, 777},
		{"SIGN-15", true, 258}, // floor(1723 * 0.15)
		{"NOPE", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := c.Promo(tt.input)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.amount, p.Amount(1723))
			}
		})
	}

	for _, p := range c.ListedPromos() {
		assert.NotEqual(t, "SIGN-15", p.Code, "percent code is not listed")
	}
}

func TestTargetFromMarket(t *testing.T) {
	c := Default()
	m, ok := c.MarketItem("14")
	require.True(t, ok)

	target := TargetFromMarket(m)
	assert.Equal(t, "AWP | Dragon Lore", target.Name)
	assert.Equal(t, domain.RarityLegendary, target.Rarity)
	assert.Equal(t, 15000.0, target.Value)
	assert.True(t, target.Custom)

	unpriced := TargetFromMarket(MarketItem{ID: "x", Grade: "Mil-Spec", Price: 0})
	assert.Equal(t, float64(DefaultMarketPrice), unpriced.Value)
	assert.Equal(t, domain.RarityRare, unpriced.Rarity)
	assert.Equal(t, "Unknown Item", unpriced.Name)

	rounded := TargetFromMarket(MarketItem{ID: "y", Name: "y", Price: 99.6})
	assert.Equal(t, 100.0, rounded.Value)
}

func TestDefaultTargets_CoverEveryTier(t *testing.T) {
	targets := Default().DefaultTargets()
	tiers := map[domain.Rarity]int{}
	for _, tgt := range targets {
		tiers[tgt.Rarity]++
		assert.Greater(t, tgt.Value, 0.0)
		assert.False(t, tgt.Custom)
	}
	assert.Len(t, tiers, domain.RarityCount)
}

func TestValidate_ReportsProblems(t *testing.T) {
	c := Default()
	c.Cases = append(c.Cases, CaseDef{ID: "dust2", Name: "dup", Price: 0})
	c.Pools[2] = nil
	c.Promos = append(c.Promos, PromoDef{Code: "lower", Reward: 1})

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDataIntegrity))
	assert.Contains(t, err.Error(), "duplicate case id")
	assert.Contains(t, err.Error(), "non-positive price")
	assert.Contains(t, err.Error(), "empty epic pool")
	assert.Contains(t, err.Error(), "not normalized")
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Cases, c.Cases)
}

func TestLoad_OverridesSections(t *testing.T) {
	path := writeCatalog(t, `
cases:
  - id: test-case
    name: TEST
    price: 10
    item_count: 5
tier_prices:
  legendary: 2000
pools:
  common:
    - name: Test Common
      icon: "🔫"
promos:
  - code: " newcode "
    reward: 5
`)

	c, err := Load(path)
	require.NoError(t, err)

	require.Len(t, c.Cases, 1)
	assert.Equal(t, "test-case", c.Cases[0].ID)
	assert.Equal(t, 2000.0, c.TierPrice(domain.RarityLegendary))
	assert.Equal(t, 50.0, c.TierPrice(domain.RarityCommon), "untouched tiers keep defaults")
	assert.Equal(t, []PoolItem{{Name: "Test Common", Icon: "🔫"}}, c.Pool(domain.RarityCommon))

	_, ok := c.Promo("NEWCODE")
	assert.True(t, ok)
	_, ok = c.Promo("WELCOME100")
	assert.False(t, ok, "promo section replaces defaults")
	assert.Equal(t, Default().Market, c.Market)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeCatalog(t, "cases: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeCatalog(t, "tier_prices:\n  mythic: 10\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDataIntegrity))

	_, err = Load(writeCatalog(t, "tier_prices:\n  rare: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive rare tier price")
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown section", "skins:\n  - id: x\n", "additionalProperties"},
		{"case without id", "cases:\n  - name: X\n    price: 5\n", "required"},
		{"negative promo reward", "promos:\n  - code: BAD\n    reward: -5\n", "minimum"},
		{"percent above one", "promos:\n  - code: BAD\n    percent: 1.5\n", "maximum"},
		{"pool item without name", "pools:\n  rare:\n    - icon: x\n", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.content))

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDataIntegrity))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
