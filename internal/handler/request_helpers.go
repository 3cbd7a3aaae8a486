package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/CaseForge_Go/internal/logger"
)

// Route parameter names
const (
	ParamSessionID = "sessionID"
	ParamCaseID    = "caseID"
	ParamEntryID   = "entryID"
	ParamTargetID  = "targetID"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req UpgradeRequestBody
//	if err := DecodeAndValidateRequest(r, w, &req, "Upgrade"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	// Decode JSON body
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	// Validate the request struct
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// sessionID returns the session path parameter. The ledger validates it.
func sessionID(r *http.Request) string {
	return chi.URLParam(r, ParamSessionID)
}

// entryID parses the inventory entry path parameter. If ok is false the
// response has already been written.
func entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, ParamEntryID))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidEntryID)
		return uuid.Nil, false
	}
	return id, true
}
