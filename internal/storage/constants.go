package storage

// Keys of the per-session values. They match the keys the web client keeps
// in local storage so exported state can be imported unchanged.
const (
	KeyBalance        = "balance"
	KeyInventory      = "inventory"
	KeyUpgradeHistory = "upgrade_history"
	KeyUsedPromoCodes = "used_promocodes"
	KeyLastDailyClaim = "last_daily_claim"
	KeyDailyStreak    = "daily_streak"
	KeyCustomTargets  = "custom_targets"
	KeyStats          = "stats"
)

// Error messages
const (
	ErrMsgEncodeFailed = "failed to encode %s"
	ErrMsgDecodeFailed = "failed to decode %s"
)
