package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// OpenCaseResponse is a settled case opening. The client animates the reel
// for reveal_after_ms before showing the prize.
type OpenCaseResponse struct {
	*ledger.OpenCaseResult
	RevealAfterMs int64 `json:"reveal_after_ms"`
}

// ClearInventoryResponse reports how many entries were discarded
type ClearInventoryResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// HandleOpenCase buys and opens a case
// @Summary Open case
// @Description Debits the case price and rolls a reward. The outcome is settled before the response is sent.
// @Tags cases
// @Produce json
// @Param sessionID path string true "Session id"
// @Param caseID path string true "Case id"
// @Success 200 {object} OpenCaseResponse
// @Failure 400 {object} ErrorResponse "Not enough money"
// @Failure 404 {object} ErrorResponse "Unknown case"
// @Router /api/v1/sessions/{sessionID}/cases/{caseID}/open [post]
func (h *SessionHandler) HandleOpenCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, ParamCaseID)

	result, err := h.service.OpenCase(r.Context(), sessionID(r), caseID)
	if err != nil {
		respondServiceError(w, r, "Open case", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgCaseOpened,
		"case", caseID,
		"rarity", result.Item.Rarity,
		"balance", result.Balance)

	respondJSON(w, http.StatusOK, OpenCaseResponse{
		OpenCaseResult: result,
		RevealAfterMs:  result.RevealAfter.Milliseconds(),
	})
}

// HandleSellItem sells an inventory entry at its value
// @Summary Sell item
// @Tags inventory
// @Produce json
// @Param sessionID path string true "Session id"
// @Param entryID path string true "Inventory entry id"
// @Success 200 {object} ledger.SellResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/inventory/{entryID}/sell [post]
func (h *SessionHandler) HandleSellItem(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	result, err := h.service.SellItem(r.Context(), sessionID(r), id)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleRemoveItem discards an inventory entry without credit
// @Summary Remove item
// @Tags inventory
// @Produce json
// @Param sessionID path string true "Session id"
// @Param entryID path string true "Inventory entry id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID}/inventory/{entryID} [delete]
func (h *SessionHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := entryID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(r.Context(), sessionID(r), id); err != nil {
		respondServiceError(w, r, "Remove item", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemovedSuccess})
}

// HandleClearInventory discards every inventory entry
// @Summary Clear inventory
// @Tags inventory
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} ClearInventoryResponse
// @Router /api/v1/sessions/{sessionID}/inventory [delete]
func (h *SessionHandler) HandleClearInventory(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.ClearInventory(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "Clear inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, ClearInventoryResponse{
		Message: fmt.Sprintf(MsgInventoryClearedFormat, removed),
		Removed: removed,
	})
}
