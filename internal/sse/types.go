package sse

import "github.com/osse101/CaseForge_Go/internal/domain"

// LiveDropPayload is one entry in the public live-drop feed. Session ids
// are reduced to a short tag so the feed never exposes them.
type LiveDropPayload struct {
	Player string        `json:"player"`
	Source string        `json:"source"`
	From   string        `json:"from,omitempty"`
	Item   string        `json:"item"`
	Icon   string        `json:"icon,omitempty"`
	Rarity domain.Rarity `json:"rarity"`
	Value  float64       `json:"value"`
}

// UpgradeWinPayload announces a successful upgrade
type UpgradeWinPayload struct {
	Player string        `json:"player"`
	Item   string        `json:"item"`
	Rarity domain.Rarity `json:"rarity"`
	Value  float64       `json:"value"`
	Chance float64       `json:"chance"`
}

// ConnectedPayload is sent once when a client connects
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
}
