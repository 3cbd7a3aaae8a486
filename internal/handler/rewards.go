package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// ContractRequest lists the entries traded into a contract
type ContractRequest struct {
	EntryIDs []uuid.UUID `json:"entry_ids" validate:"required,min=1"`
}

// PromoRequest carries a promo code as typed by the player
type PromoRequest struct {
	Code string `json:"code" validate:"notblank,max=32,excludesall=\x00\n\r\t"`
}

// DailyBonusStatusResponse adds the remaining cooldown in milliseconds
type DailyBonusStatusResponse struct {
	*ledger.DailyBonusStatus
	RemainingMs int64 `json:"remaining_ms"`
}

// HandleExecuteContract trades five same-tier items for one of the next tier
// @Summary Sign contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param sessionID path string true "Session id"
// @Param request body ContractRequest true "Entries to trade"
// @Success 201 {object} ledger.ContractResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/contracts [post]
func (h *SessionHandler) HandleExecuteContract(w http.ResponseWriter, r *http.Request) {
	var req ContractRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Contract"); err != nil {
		return
	}

	result, err := h.service.ExecuteContract(r.Context(), sessionID(r), req.EntryIDs)
	if err != nil {
		respondServiceError(w, r, "Contract", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgContractSigned,
		"rarity", result.Entry.Rarity,
		"item", result.Entry.Name)

	respondJSON(w, http.StatusCreated, result)
}

// HandleRedeemPromo redeems a promo code once per session
// @Summary Redeem promo code
// @Tags promo
// @Accept json
// @Produce json
// @Param sessionID path string true "Session id"
// @Param request body PromoRequest true "Promo code"
// @Success 200 {object} ledger.PromoResult
// @Failure 404 {object} ErrorResponse "Unknown code"
// @Failure 409 {object} ErrorResponse "Already redeemed"
// @Router /api/v1/sessions/{sessionID}/promocodes/redeem [post]
func (h *SessionHandler) HandleRedeemPromo(w http.ResponseWriter, r *http.Request) {
	var req PromoRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Redeem promo"); err != nil {
		return
	}

	result, err := h.service.RedeemPromo(r.Context(), sessionID(r), req.Code)
	if err != nil {
		respondServiceError(w, r, "Redeem promo", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgPromoRedeemed, "code", result.Code, "amount", result.Amount)
	respondJSON(w, http.StatusOK, result)
}

// HandleDailyBonusStatus reports whether the daily bonus is available
// @Summary Daily bonus status
// @Tags bonus
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} DailyBonusStatusResponse
// @Router /api/v1/sessions/{sessionID}/bonus/daily [get]
func (h *SessionHandler) HandleDailyBonusStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.DailyBonusStatus(r.Context(), sessionID(r), h.now())
	if err != nil {
		respondServiceError(w, r, "Daily bonus status", err)
		return
	}
	respondJSON(w, http.StatusOK, DailyBonusStatusResponse{
		DailyBonusStatus: status,
		RemainingMs:      status.Remaining.Milliseconds(),
	})
}

// HandleClaimDailyBonus claims the daily bonus
// @Summary Claim daily bonus
// @Tags bonus
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} ledger.DailyBonusResult
// @Failure 429 {object} ErrorResponse "Still on cooldown"
// @Router /api/v1/sessions/{sessionID}/bonus/daily/claim [post]
func (h *SessionHandler) HandleClaimDailyBonus(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ClaimDailyBonus(r.Context(), sessionID(r), h.now())
	if err != nil {
		respondServiceError(w, r, "Claim daily bonus", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgDailyBonusClaimed, "amount", result.Amount, "streak", result.Streak)
	respondJSON(w, http.StatusOK, result)
}
