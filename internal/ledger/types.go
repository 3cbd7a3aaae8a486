package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/odds"
	"github.com/osse101/CaseForge_Go/internal/resolver"
	"github.com/osse101/CaseForge_Go/internal/reward"
)

// OpenCaseResult is a settled case opening
type OpenCaseResult struct {
	*reward.CaseResult
	Entry       domain.InventoryEntry `json:"entry"`
	Balance     float64               `json:"balance"`
	RevealAfter time.Duration         `json:"-"`
}

// SellResult is a completed sale
type SellResult struct {
	Entry   domain.InventoryEntry `json:"entry"`
	Credit  float64               `json:"credit"`
	Balance float64               `json:"balance"`
}

// UpgradeRequest selects the stake and target of an upgrade attempt.
// ExpectedChance, when set, is the chance the player was shown; a
// different recomputed chance refuses the attempt.
type UpgradeRequest struct {
	InputIDs       []uuid.UUID
	TargetID       string
	Bet            float64
	ExpectedChance *float64
}

// UpgradeOutcome is a settled upgrade attempt
type UpgradeOutcome struct {
	Quote       odds.Quote                  `json:"quote"`
	Outcome     resolver.Outcome            `json:"outcome"`
	Record      domain.UpgradeHistoryRecord `json:"record"`
	Reward      *domain.InventoryEntry      `json:"reward,omitempty"`
	Balance     float64                     `json:"balance"`
	RevealAfter time.Duration               `json:"-"`
}

// ContractResult is a completed trade-up contract
type ContractResult struct {
	Consumed []domain.InventoryEntry `json:"consumed"`
	Entry    domain.InventoryEntry   `json:"entry"`
}

// PromoResult is a redeemed promo code
type PromoResult struct {
	Code    string  `json:"code"`
	Amount  float64 `json:"amount"`
	Balance float64 `json:"balance"`
}

// DailyBonusStatus describes whether the daily bonus can be claimed
type DailyBonusStatus struct {
	Available   bool          `json:"available"`
	Remaining   time.Duration `json:"-"`
	NextClaimAt *time.Time    `json:"next_claim_at,omitempty"`
	LastClaimAt *time.Time    `json:"last_claim_at,omitempty"`
	Streak      int           `json:"streak"`
	StreakDay   int           `json:"streak_day"`
}

// DailyBonusResult is a claimed daily bonus
type DailyBonusResult struct {
	Amount      float64   `json:"amount"`
	Streak      int       `json:"streak"`
	StreakDay   int       `json:"streak_day"`
	Balance     float64   `json:"balance"`
	NextClaimAt time.Time `json:"next_claim_at"`
}
