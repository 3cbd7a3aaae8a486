package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgTargetNotFound = "upgrade target not found"
	ErrMsgCaseNotFound   = "case not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Selection errors
	ErrMsgInvalidSelection = "invalid selection"
	ErrMsgQuoteMismatch    = "quoted chance no longer matches"

	// Data integrity errors
	ErrMsgDataIntegrity = "data integrity violation"

	// Promo errors
	ErrMsgPromoNotFound        = "promo code not found"
	ErrMsgPromoAlreadyRedeemed = "promo code already redeemed"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Storage errors
	ErrMsgStorageFailure = "storage failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrTargetNotFound = errors.New(ErrMsgTargetNotFound)
	ErrCaseNotFound   = errors.New(ErrMsgCaseNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Selection errors
	ErrInvalidSelection = errors.New(ErrMsgInvalidSelection)
	ErrQuoteMismatch    = errors.New(ErrMsgQuoteMismatch)

	// Data integrity errors
	ErrDataIntegrity = errors.New(ErrMsgDataIntegrity)

	// Promo errors
	ErrPromoNotFound        = errors.New(ErrMsgPromoNotFound)
	ErrPromoAlreadyRedeemed = errors.New(ErrMsgPromoAlreadyRedeemed)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	// Storage errors
	ErrStorageFailure = errors.New(ErrMsgStorageFailure)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
