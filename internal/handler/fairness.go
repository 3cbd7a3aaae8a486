package handler

import (
	"net/http"

	"github.com/osse101/CaseForge_Go/internal/fairness"
	"github.com/osse101/CaseForge_Go/internal/logger"
)

// FairnessInfo exposes the public side of a provably fair source
type FairnessInfo interface {
	Commitment() string
	ClientSeed() string
	Nonce() uint64
}

// FairnessResponse describes how draws are produced
type FairnessResponse struct {
	Mode       string `json:"mode"`
	Verifiable bool   `json:"verifiable"`
	Commitment string `json:"commitment,omitempty"`
	ClientSeed string `json:"client_seed,omitempty"`
	NextNonce  uint64 `json:"next_nonce,omitempty"`
}

// SeedRotator retires the active server seed of a provably fair source
type SeedRotator interface {
	RotateFair() (fairness.Reveal, error)
}

// VerifyRequest replays one draw from a revealed server seed
type VerifyRequest struct {
	ServerSeed string  `json:"server_seed" validate:"notblank,max=256"`
	ClientSeed string  `json:"client_seed" validate:"max=256"`
	Nonce      uint64  `json:"nonce"`
	Commitment string  `json:"commitment,omitempty" validate:"omitempty,len=64,hexadecimal"`
	Draw       float64 `json:"draw" validate:"gte=0,lt=1"`
}

// VerifyResponse reports the replayed draw and what it matched
type VerifyResponse struct {
	Draw            float64 `json:"draw"`
	DrawMatches     bool    `json:"draw_matches"`
	CommitmentValid *bool   `json:"commitment_valid,omitempty"`
}

// HandleFairness reports the random source mode. info is nil unless the
// provably fair source is active.
// @Summary Fairness parameters
// @Tags fairness
// @Produce json
// @Success 200 {object} FairnessResponse
// @Router /api/v1/fairness [get]
func HandleFairness(mode string, info FairnessInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := FairnessResponse{Mode: mode}
		if info != nil {
			resp.Verifiable = true
			resp.Commitment = info.Commitment()
			resp.ClientSeed = info.ClientSeed()
			resp.NextNonce = info.Nonce()
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleVerifyDraw recomputes a draw from its seeds
// @Summary Verify a draw
// @Tags fairness
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Seeds and draw"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/fairness/verify [post]
func HandleVerifyDraw() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Verify draw"); err != nil {
			return
		}

		resp := VerifyResponse{
			Draw:        fairness.Draw(req.ServerSeed, req.ClientSeed, req.Nonce),
			DrawMatches: fairness.VerifyDraw(req.ServerSeed, req.ClientSeed, req.Nonce, req.Draw),
		}
		if req.Commitment != "" {
			valid := fairness.VerifyCommitment(req.ServerSeed, req.Commitment)
			resp.CommitmentValid = &valid
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleRotateSeed reveals the active server seed and commits to a new one.
// Draws made before the call can then be checked with HandleVerifyDraw.
// @Summary Rotate the fair server seed
// @Tags fairness
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} fairness.Reveal
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/fairness/rotate [post]
func HandleRotateSeed(rotator SeedRotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reveal, err := rotator.RotateFair()
		if err != nil {
			respondServiceError(w, r, "Rotate seed", err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgSeedRotated, "draws", reveal.Draws, "commitment", reveal.NextCommitment)
		respondJSON(w, http.StatusOK, reveal)
	}
}
