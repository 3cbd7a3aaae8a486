package catalog

import (
	"embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/validation"
)

// SchemaFile is the JSON schema every override file must satisfy
const SchemaFile = "catalog.schema.json"

//go:embed catalog.schema.json
var schemaFS embed.FS

var schemaValidator = validation.NewSchemaValidator(schemaFS)

// fileCatalog is the YAML shape of an override file. Every section is
// optional; a present section replaces the built-in one.
type fileCatalog struct {
	Cases      []CaseDef             `yaml:"cases"`
	TierPrices map[string]float64    `yaml:"tier_prices"`
	Pools      map[string][]PoolItem `yaml:"pools"`
	Promos     []PromoDef            `yaml:"promos"`
	Market     []MarketItem          `yaml:"market"`
}

// Load returns the built-in catalog, overridden by the YAML file at path
// when path is not empty
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, c.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}

	if err := schemaValidator.ValidateYAML(data, SchemaFile); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, path, err)
	}

	if err := c.apply(data); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info(LogMsgCatalogLoaded,
		"path", path,
		"cases", len(c.Cases),
		"promos", len(c.Promos),
		"market", len(c.Market))
	return c, nil
}

func (c *Catalog) apply(data []byte) error {
	var f fileCatalog
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if len(f.Cases) > 0 {
		slog.Default().Debug(LogMsgCatalogOverride, "section", "cases")
		c.Cases = f.Cases
	}
	for name, price := range f.TierPrices {
		r, err := domain.ParseRarity(name)
		if err != nil {
			return err
		}
		idx, _ := r.Index()
		c.TierPrices[idx] = price
	}
	for name, pool := range f.Pools {
		r, err := domain.ParseRarity(name)
		if err != nil {
			return err
		}
		idx, _ := r.Index()
		c.Pools[idx] = pool
	}
	if len(f.Promos) > 0 {
		slog.Default().Debug(LogMsgCatalogOverride, "section", "promos")
		promos := make([]PromoDef, len(f.Promos))
		for i, p := range f.Promos {
			p.Code = NormalizePromoCode(p.Code)
			promos[i] = p
		}
		c.Promos = promos
	}
	if len(f.Market) > 0 {
		slog.Default().Debug(LogMsgCatalogOverride, "section", "market")
		c.Market = f.Market
	}
	return nil
}
