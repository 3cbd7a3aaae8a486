package ledger

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// DefaultCacheSize is the default maximum number of cached sessions
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cached sessions
const DefaultCacheTTL = 10 * time.Minute

// MaxSessionIDLength matches the session_id column width
const MaxSessionIDLength = 64

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSessionCreated    = "New session created"
	LogMsgSessionLoaded     = "Session loaded from store"
	LogMsgSessionSaveFailed = "Failed to save session"
	LogMsgSessionReset      = "Session reset"
	LogMsgSessionDeleted    = "Session deleted"
	LogMsgPublishFailed     = "Failed to publish session event"
	LogMsgCaseOpened        = "Case opened"
	LogMsgItemSold          = "Item sold"
	LogMsgUpgradeResolved   = "Upgrade resolved"
	LogMsgContractSigned    = "Contract signed"
	LogMsgPromoRedeemed     = "Promo code redeemed"
	LogMsgDailyBonusClaimed = "Daily bonus claimed"
	LogMsgActionRejected    = "Action rejected"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgEmptySessionID     = "session id is required"
	ErrMsgSessionIDTooLong   = "session id longer than %d characters"
	ErrMsgNoInputs           = "select at least one item"
	ErrMsgTooManyInputs      = "select at most %d items"
	ErrMsgDuplicateInput     = "item %s selected twice"
	ErrMsgUnknownEntry       = "no item %s in inventory"
	ErrMsgUnknownTarget      = "no upgrade target %q"
	ErrMsgNoTarget           = "select an upgrade target"
	ErrMsgInvalidBet         = "bet must be a non-negative number, got %v"
	ErrMsgBetOverBalance     = "bet %v exceeds balance %v"
	ErrMsgBetOverMax         = "bet %v exceeds the maximum of %v"
	ErrMsgCasePrice          = "case costs %v, balance is %v"
	ErrMsgUnknownCase        = "no case %q"
	ErrMsgEmptyPromoCode     = "promo code is empty"
	ErrMsgPromoCode          = "%q"
	ErrMsgUnknownMarketItem  = "no market item %q"
	ErrMsgCustomTargetAbsent = "no custom target %q"
)
