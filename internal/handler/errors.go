package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgInvalidEntryID = "Invalid inventory entry id"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgServiceRejected    = "Request rejected by service"
	LogMsgServiceFailed      = "Service call failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgCaseOpened         = "Case opened"
	LogMsgUpgradeResolved    = "Upgrade resolved"
	LogMsgContractSigned     = "Contract signed"
	LogMsgDailyBonusClaimed  = "Daily bonus claimed"
	LogMsgPromoRedeemed      = "Promo code redeemed"
	LogMsgSessionResetByUser = "Session reset requested"
	LogMsgSessionDeleted     = "Session deleted by admin"
	LogMsgSeedRotated        = "Fair server seed rotated by admin"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgItemRemovedSuccess     = "Item removed"
	MsgInventoryClearedFormat = "Removed %d items"
	MsgHistoryClearedSuccess  = "Upgrade history cleared"
	MsgTargetRemovedSuccess   = "Upgrade target removed"
	MsgSessionDeletedSuccess  = "Session deleted"
)
