package domain

import (
	"fmt"
	"strings"
)

// Rarity is the ordered quality tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// RarityCount is the number of tiers. Tables keyed by tier are sized with it,
// so a new tier fails to compile until every table covers it.
const RarityCount = 4

var rarityOrder = [RarityCount]Rarity{
	RarityCommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

var rarityLabels = [RarityCount]string{
	"Обычный",
	"Редкий",
	"Эпический",
	"Легендарный",
}

var rarityColors = [RarityCount]string{
	"#b0c3d9",
	"#4b69ff",
	"#8847ff",
	"#eb4b4b",
}

// AllRarities returns every tier from lowest to highest
func AllRarities() []Rarity {
	out := make([]Rarity, RarityCount)
	copy(out, rarityOrder[:])
	return out
}

// Index returns the position of r in the tier order
func (r Rarity) Index() (int, bool) {
	for i, candidate := range rarityOrder {
		if candidate == r {
			return i, true
		}
	}
	return -1, false
}

// Valid reports whether r is one of the known tiers
func (r Rarity) Valid() bool {
	_, ok := r.Index()
	return ok
}

// RarityAt returns the tier at position i
func RarityAt(i int) (Rarity, bool) {
	if i < 0 || i >= RarityCount {
		return "", false
	}
	return rarityOrder[i], true
}

// Next returns the tier directly above r. It returns false for legendary
// (and unknown tiers), which makes the item ineligible for trade-up.
func (r Rarity) Next() (Rarity, bool) {
	idx, ok := r.Index()
	if !ok {
		return "", false
	}
	return RarityAt(idx + 1)
}

// Label returns the display label shown next to items of this tier
func (r Rarity) Label() string {
	idx, ok := r.Index()
	if !ok {
		return string(r)
	}
	return rarityLabels[idx]
}

// Color returns the display color of this tier as a hex string
func (r Rarity) Color() string {
	idx, ok := r.Index()
	if !ok {
		return rarityColors[0]
	}
	return rarityColors[idx]
}

// ParseRarity parses a tier name case-insensitively
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown rarity %q", ErrDataIntegrity, s)
	}
	return r, nil
}

// Market grade names used by imported upgrade targets
const (
	GradeConsumer      = "Consumer Grade"
	GradeIndustrial    = "Industrial Grade"
	GradeMilSpec       = "Mil-Spec"
	GradeMilSpecGrade  = "Mil-Spec Grade"
	GradeRestricted    = "Restricted"
	GradeClassified    = "Classified"
	GradeCovert        = "Covert"
	GradeExtraordinary = "Extraordinary"
	GradeContraband    = "Contraband"
)

var marketGrades = map[string]Rarity{
	GradeConsumer:      RarityCommon,
	GradeIndustrial:    RarityCommon,
	GradeMilSpec:       RarityRare,
	GradeMilSpecGrade:  RarityRare,
	GradeRestricted:    RarityRare,
	GradeClassified:    RarityEpic,
	GradeCovert:        RarityLegendary,
	GradeExtraordinary: RarityLegendary,
	GradeContraband:    RarityLegendary,
}

// RarityFromMarketGrade maps a market grade name to a tier. Unknown grades
// fall back to common.
func RarityFromMarketGrade(grade string) Rarity {
	if r, ok := marketGrades[strings.TrimSpace(grade)]; ok {
		return r
	}
	return RarityCommon
}
