package handler

import (
	"net/http"
	"time"

	"github.com/osse101/CaseForge_Go/internal/domain"
	"github.com/osse101/CaseForge_Go/internal/ledger"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// SessionHandler serves every per-session route
type SessionHandler struct {
	service ledger.Service
	now     func() time.Time
}

// NewSessionHandler creates a session handler. A nil now uses time.Now.
func NewSessionHandler(service ledger.Service, now func() time.Time) *SessionHandler {
	if now == nil {
		now = time.Now
	}
	return &SessionHandler{service: service, now: now}
}

// SessionResponse is a session plus derived totals
type SessionResponse struct {
	*domain.SessionState
	InventoryValue float64 `json:"inventory_value"`
}

func newSessionResponse(state *domain.SessionState) SessionResponse {
	return SessionResponse{SessionState: state, InventoryValue: state.InventoryValue()}
}

// HandleGetState returns the session, creating it on first access
// @Summary Get session
// @Description Returns balance, inventory, history and profile stats. New sessions start with the default balance.
// @Tags session
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID} [get]
func (h *SessionHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetState(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "Get session", err)
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(state))
}

// HandleReset replaces the session with a fresh one
// @Summary Reset session
// @Tags session
// @Produce json
// @Param sessionID path string true "Session id"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{sessionID} [delete]
func (h *SessionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.ResetSession(r.Context(), sessionID(r))
	if err != nil {
		respondServiceError(w, r, "Reset session", err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgSessionResetByUser)
	respondJSON(w, http.StatusOK, newSessionResponse(state))
}

// HandleDeleteSession removes a session from storage and from the running
// service's cache
// @Summary Delete session
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/sessions/{sessionID} [delete]
func (h *SessionHandler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSession(r.Context(), sessionID(r)); err != nil {
		respondServiceError(w, r, "Delete session", err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgSessionDeleted, "session_id", sessionID(r))
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionDeletedSuccess})
}
