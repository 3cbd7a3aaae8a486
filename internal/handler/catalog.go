package handler

import (
	"net/http"

	"github.com/osse101/CaseForge_Go/internal/catalog"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/reward"
)

// CatalogHandler serves the static game data
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// RarityInfo describes one tier for display
type RarityInfo struct {
	Rarity      domain.Rarity `json:"rarity"`
	Label       string        `json:"label"`
	Color       string        `json:"color"`
	Probability float64       `json:"probability"`
	ItemValue   float64       `json:"item_value"`
}

// PromoInfo is a promo code shown on the promo page
type PromoInfo struct {
	Code        string  `json:"code"`
	Reward      float64 `json:"reward"`
	Description string  `json:"description"`
}

// HandleListCases lists the purchasable cases
// @Summary List cases
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.CaseDef
// @Router /api/v1/catalog/cases [get]
func (h *CatalogHandler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Cases)
}

// HandleListRarities lists the tiers with their drop probabilities
// @Summary List rarities
// @Tags catalog
// @Produce json
// @Success 200 {array} RarityInfo
// @Router /api/v1/catalog/rarities [get]
func (h *CatalogHandler) HandleListRarities(w http.ResponseWriter, r *http.Request) {
	rarities := domain.AllRarities()
	out := make([]RarityInfo, 0, len(rarities))
	for _, rarity := range rarities {
		out = append(out, RarityInfo{
			Rarity:      rarity,
			Label:       rarity.Label(),
			Color:       rarity.Color(),
			Probability: reward.TierProbability(rarity),
			ItemValue:   h.catalog.TierPrice(rarity),
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleListPromos lists the public promo codes
// @Summary List promo codes
// @Tags catalog
// @Produce json
// @Success 200 {array} PromoInfo
// @Router /api/v1/catalog/promocodes [get]
func (h *CatalogHandler) HandleListPromos(w http.ResponseWriter, r *http.Request) {
	promos := h.catalog.ListedPromos()
	out := make([]PromoInfo, 0, len(promos))
	for _, p := range promos {
		out = append(out, PromoInfo{Code: p.Code, Reward: p.Reward, Description: p.Description})
	}
	respondJSON(w, http.StatusOK, out)
}

// HandleListMarket lists the items that can become custom upgrade targets
// @Summary List market items
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.MarketItem
// @Router /api/v1/catalog/market [get]
func (h *CatalogHandler) HandleListMarket(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Market)
}
