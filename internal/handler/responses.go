package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/osse101/CaseForge_Go/internal/cooldown"
	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service error and writes its mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceRejected, "operation", opName, "error", err)
	}

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(cd.Remaining.Seconds()))))
	}

	respondError(w, status, msg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	// Inventory and catalog messages
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgCaseNotFoundError   = "Case not found"
	ErrMsgTargetNotFoundError = "Upgrade target not found"
	ErrMsgSessionNotFoundErr  = "Session not found"

	// Economy messages
	ErrMsgNotEnoughMoneyError = "Not enough money"

	// Upgrade and contract messages
	ErrMsgInvalidSelectionError = "Invalid selection. Check the chosen items, target and bet."
	ErrMsgQuoteMismatchError    = "The chance changed. Review the upgrade and try again."

	// Promo messages
	ErrMsgPromoNotFoundError        = "Unknown promo code"
	ErrMsgPromoAlreadyRedeemedError = "Promo code already used"

	// Cooldown messages
	ErrMsgOnCooldownError = "Action is on cooldown. Try again later"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Cooldown errors carry the remaining time in their message
	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		return http.StatusTooManyRequests, cd.Error()
	}

	// Selection errors wrap the reason (e.g. an unknown item), so check them first
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		return http.StatusBadRequest, ErrMsgInvalidSelectionError
	case errors.Is(err, domain.ErrQuoteMismatch):
		return http.StatusConflict, ErrMsgQuoteMismatchError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrTargetNotFound):
		return http.StatusNotFound, ErrMsgTargetNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundErr
	case errors.Is(err, domain.ErrPromoNotFound):
		return http.StatusNotFound, ErrMsgPromoNotFoundError
	case errors.Is(err, domain.ErrPromoAlreadyRedeemed):
		return http.StatusConflict, ErrMsgPromoAlreadyRedeemedError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrStorageFailure):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrDataIntegrity):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
