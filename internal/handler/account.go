package handler

import (
	"net/http"
	"strconv"

	"github.com/mingleton/dawson-rp/internal/account"
	"github.com/mingleton/dawson-rp/internal/domain"
	"github.com/mingleton/dawson-rp/internal/inventory"
	"github.com/mingleton/dawson-rp/internal/logger"
	"github.com/mingleton/dawson-rp/internal/metrics"
)

// CreateAccountRequest registers a new account for a platform identity.
type CreateAccountRequest struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
}

// AdjustHealthRequest applies a delta to an account's hit points.
type AdjustHealthRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// AccountProfileResponse is the account plus its derived inventory.
type AccountProfileResponse struct {
	Account   *domain.Account         `json:"account"`
	Inventory []domain.InventoryStack `json:"inventory"`
}

// HealthAdjustedResponse reports the clamped hit points after an adjustment.
type HealthAdjustedResponse struct {
	AccountID int64 `json:"account_id"`
	HP        int   `json:"hp"`
}

// HandleCreateAccount creates a new account
// @Summary Create account
// @Description Registers a new account with starting funds and rolled abilities
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account to create"
// @Success 201 {object} domain.Account
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/accounts [post]
func HandleCreateAccount(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create account"); err != nil {
			return
		}

		created, err := accountService.CreateAccount(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, r, "create account", err)
			return
		}

		metrics.AccountsCreated.Inc()
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetAccount returns an account profile with its inventory
// @Summary Get account
// @Description Returns the account and its derived inventory stacks
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} AccountProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id} [get]
func HandleGetAccount(accountService account.Service, inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(r, w, "id")
		if !ok {
			return
		}

		acct, err := accountService.GetAccount(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get account", err)
			return
		}

		stacks, err := inventoryService.GetInventory(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get account inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, AccountProfileResponse{
			Account:   acct,
			Inventory: stacks,
		})
	}
}

// HandleAdjustHealth applies a clamped hit point delta
// @Summary Adjust health
// @Description Adds delta to the account's hit points, clamped to 0-100
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AdjustHealthRequest true "Delta to apply"
// @Success 200 {object} HealthAdjustedResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/health [post]
func HandleAdjustHealth(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(r, w, "id")
		if !ok {
			return
		}

		var req AdjustHealthRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Adjust health"); err != nil {
			return
		}

		hp, err := accountService.AdjustHealth(r.Context(), id, req.Delta)
		if err != nil {
			respondServiceError(w, r, "adjust health", err)
			return
		}

		respondJSON(w, http.StatusOK, HealthAdjustedResponse{AccountID: id, HP: hp})
	}
}

// HandleLeaderboard returns the top accounts by balance
// @Summary Balance leaderboard
// @Description Returns accounts ranked by balance, richest first
// @Tags accounts
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} DataResponse
// @Router /api/v1/leaderboard [get]
func HandleLeaderboard(accountService account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			limit = parsed
		}

		entries, err := accountService.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "get leaderboard", err)
			return
		}

		logger.FromContext(r.Context()).Debug("Leaderboard served", "entries", len(entries))
		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
