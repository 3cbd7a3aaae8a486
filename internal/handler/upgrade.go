package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// UpgradeRequestBody selects the items, bet and target of an upgrade
type UpgradeRequestBody struct {
	InputIDs       []uuid.UUID `json:"input_ids" validate:"required,min=1,max=6"`
	TargetID       string      `json:"target_id" validate:"notblank,max=128"`
	Bet            float64     `json:"bet" validate:"gte=0"`
	ExpectedChance *float64    `json:"expected_chance,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (b UpgradeRequestBody) toLedger() ledger.UpgradeRequest {
	return ledger.UpgradeRequest{
		InputIDs:       b.InputIDs,
		TargetID:       b.TargetID,
		Bet:            b.Bet,
		ExpectedChance: b.ExpectedChance,
	}
}

// UpgradeResponse is a settled upgrade attempt. The wheel spins for
// reveal_after_ms and stops at outcome.angle.
type UpgradeResponse struct {
	*ledger.UpgradeOutcome
	RevealAfterMs int64 `json:"reveal_after_ms"`
}

// AddTargetRequest adds a market item as a custom upgrade target
type AddTargetRequest struct {
	MarketID string `json:"market_id" validate:"notblank,max=64"`
}

// HandleQuoteUpgrade computes the chance of an upgrade without settling it
// @Summary Quote upgrade
// @Tags upgrade
// @Accept json
// @Produce json
// @Param sessionID path string true "Session id"
// @Param request body UpgradeRequestBody true "Upgrade selection"
// @Success 200 {object} odds.Quote
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/upgrade/quote [post]
func (h *SessionHandler) HandleQuoteUpgrade(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequestBody
	if err := DecodeAndValidateRequest(r, w, &req, "Quote upgrade"); err != nil {
		return
	}

	quote, err := h.service.QuoteUpgrade(r.Context(), sessionID(r), req.toLedger())
	if err != nil {
		respondServiceError(w, r, "Quote upgrade", err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// HandleUpgrade settles an upgrade attempt
// @Summary Upgrade
// @Description Stakes the selected items and bet for a chance at the target. Pass expected_chance to refuse the attempt if the odds changed since the quote.
// @Tags upgrade
// @Accept json
// @Produce json
// @Param sessionID path string true "Session id"
// @Param request body UpgradeRequestBody true "Upgrade selection"
// @Success 200 {object} UpgradeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Chance changed since the quote"
// @Router /api/v1/sessions/{sessionID}/upgrade [post]
func (h *SessionHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequestBody
	if err := DecodeAndValidateRequest(r, w, &req, "Upgrade"); err != nil {
		return
	}

	result, err := h.service.Upgrade(r.Context(), sessionID(r), req.toLedger())
	if err != nil {
		respondServiceError(w, r, "Upgrade", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgUpgradeResolved,
		"target", req.TargetID,
		"chance", result.Quote.Chance,
		"won", result.Outcome.Won)

	respondJSON(w, http.StatusOK, UpgradeResponse{
		UpgradeOutcome: result,
		RevealAfterMs:  result.RevealAfter.Milliseconds(),
	})
}

// HandleUpgradeHistory returns the newest-first upgrade log
// @Summary Upgrade history
// @Tags upgrade
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {array} domain.UpgradeHistoryRecord
// @Router /api/v1/sessions/{sessionID}/upgrade/history [get]
func (h *SessionHandler) HandleUpgradeHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.service.UpgradeHistory(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "Upgrade history", err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// HandleClearUpgradeHistory empties the upgrade log
// @Summary Clear upgrade history
// @Tags upgrade
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} SuccessResponse
// @Router /api/v1/sessions/{sessionID}/upgrade/history [delete]
func (h *SessionHandler) HandleClearUpgradeHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearUpgradeHistory(r.Context(), sessionID(r)); err != nil {
		respondServiceError(w, r, "Clear upgrade history", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHistoryClearedSuccess})
}

// HandleUpgradeTargets lists the catalog and custom targets
// @Summary Upgrade targets
// @Tags upgrade
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {array} domain.UpgradeTarget
// @Router /api/v1/sessions/{sessionID}/upgrade/targets [get]
func (h *SessionHandler) HandleUpgradeTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := h.service.UpgradeTargets(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "Upgrade targets", err)
		return
	}
	respondJSON(w, http.StatusOK, targets)
}

// HandleAddCustomTarget adds a market item to the session's targets
// @Summary Add custom target
// @Tags upgrade
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session id"
// @Param request body AddTargetRequest true "Market item"
// @Success 201 {object} domain.UpgradeTarget
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/upgrade/targets [post]
func (h *SessionHandler) HandleAddCustomTarget(w http.ResponseWriter, r *http.Request) {
	var req AddTargetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add custom target"); err != nil {
		return
	}

	target, err := h.service.AddCustomTarget(r.Context(), sessionID(r), req.MarketID)
	if err != nil {
		respondServiceError(w, r, "Add custom target", err)
		return
	}
	respondJSON(w, http.StatusCreated, target)
}

// HandleRemoveCustomTarget removes a custom target
// @Summary Remove custom target
// @Tags upgrade
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session id"
// @Param targetID path string true "Target id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/upgrade/targets/{targetID} [delete]
func (h *SessionHandler) HandleRemoveCustomTarget(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveCustomTarget(r.Context(), sessionID(r), chi.URLParam(r, ParamTargetID)); err != nil {
		respondServiceError(w, r, "Remove custom target", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTargetRemovedSuccess})
}
