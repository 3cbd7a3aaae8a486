package domain

import "time"

// Session defaults
const (
	DefaultStartingBalance = 1723.0
	MaxUpgradeHistory      = 50
)

// Inventory source labels
const (
	SourceUpgrade  = "Upgrade"
	SourceContract = "Trade-Up Contract"
)

// Action names used for cooldowns, metrics and events
const (
	ActionOpenCase    = "open_case"
	ActionSell        = "sell"
	ActionUpgrade     = "upgrade"
	ActionContract    = "contract"
	ActionRedeemPromo = "redeem_promo"
	ActionDailyBonus  = "daily_bonus"
)

// Daily bonus timing
const (
	DailyBonusCooldown = 24 * time.Hour
	// StreakBreakAfter is how long after the previous claim a new claim
	// counts as a skipped day and restarts the streak.
	StreakBreakAfter = 2 * DailyBonusCooldown
	StreakCycleDays  = 7
)

// Presentation delays between commit and reveal
const (
	CaseRevealDelay    = 5 * time.Second
	UpgradeRevealDelay = 3 * time.Second
)
