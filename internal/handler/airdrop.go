package handler

import (
	"net/http"
	"time"

	"github.com/mingleton/dawson-rp/internal/airdrop"
	"github.com/mingleton/dawson-rp/internal/metrics"
)

// StartAirdropRequest activates a new prize. A zero amount draws randomly
// within the configured bounds; a zero TTL uses the configured default.
type StartAirdropRequest struct {
	Amount     int64 `json:"amount" validate:"gte=0"`
	TTLSeconds int   `json:"ttl_seconds" validate:"gte=0"`
}

// ClaimAirdropRequest claims the active prize for an account.
type ClaimAirdropRequest struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
}

// HandleAirdropStatus returns the arbiter snapshot
// @Summary Airdrop status
// @Tags airdrop
// @Produce json
// @Success 200 {object} domain.AirdropStatus
// @Router /api/v1/airdrop [get]
func HandleAirdropStatus(airdropService airdrop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, airdropService.Status(r.Context()))
	}
}

// HandleAirdropStart activates a new prize
// @Summary Start airdrop
// @Description Activates a prize for claiming; rejected while another is active
// @Tags airdrop
// @Accept json
// @Produce json
// @Param request body StartAirdropRequest true "Prize parameters"
// @Success 201 {object} domain.AirdropStatus
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/airdrop/start [post]
func HandleAirdropStart(airdropService airdrop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartAirdropRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start airdrop"); err != nil {
			return
		}

		status, err := airdropService.Start(r.Context(), req.Amount, time.Duration(req.TTLSeconds)*time.Second)
		if err != nil {
			respondServiceError(w, r, "start airdrop", err)
			return
		}

		metrics.AirdropsStarted.Inc()
		respondJSON(w, http.StatusCreated, status)
	}
}

// HandleAirdropClaim claims the active prize
// @Summary Claim airdrop
// @Description Awards the active prize to the caller; exactly one claimant succeeds
// @Tags airdrop
// @Accept json
// @Produce json
// @Param request body ClaimAirdropRequest true "Claiming account"
// @Success 200 {object} domain.AirdropClaim
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/airdrop/claim [post]
func HandleAirdropClaim(airdropService airdrop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimAirdropRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim airdrop"); err != nil {
			return
		}

		claim, err := airdropService.Claim(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, r, "claim airdrop", err)
			return
		}

		metrics.AirdropsClaimed.Inc()
		respondJSON(w, http.StatusOK, claim)
	}
}
