package reward

// Tier thresholds for case drops. A draw strictly above a threshold lands
// in that tier.
const (
	LegendaryThreshold = 0.95
	EpicThreshold      = 0.80
	RareThreshold      = 0.50
)

// Trade-up contract rules
const (
	ContractInputCount = 5
)

// Daily bonus range, inclusive
const (
	DailyBonusMin = 5
	DailyBonusMax = 100
)

// Presentation reel
const (
	ReelLength    = 50
	WinnerSlotMin = 20
	WinnerSlotMax = 29
)

// Log messages
const (
	LogMsgCaseOpened       = "Case opened"
	LogMsgContractExecuted = "Contract executed"
	LogMsgContractRejected = "Contract rejected"
)

// Error messages
const (
	ErrMsgWrongInputCount = "contract needs exactly %d items, got %d"
	ErrMsgMixedRarity     = "contract items must share one rarity"
	ErrMsgTopTier         = "legendary items cannot be traded up"
)
