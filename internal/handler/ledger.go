package handler

import (
	"net/http"

	"github.com/mingleton/dawson-rp/internal/ledger"
	"github.com/mingleton/dawson-rp/internal/metrics"
)

// AmountRequest carries a positive dollar amount for credit/debit operations.
type AmountRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// TransferRequest moves dollars between two accounts.
type TransferRequest struct {
	FromID int64 `json:"from_id" validate:"required,gt=0"`
	ToID   int64 `json:"to_id" validate:"required,gt=0"`
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// GambleRequest wagers a stake on a uniform draw.
type GambleRequest struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
	Amount    int64 `json:"amount" validate:"required,gt=0"`
}

// BalanceResponse reports an account's balance after an operation.
type BalanceResponse struct {
	AccountID int64 `json:"account_id"`
	Dollars   int64 `json:"dollars"`
}

// TransferResponse reports the sender's balance after a transfer.
type TransferResponse struct {
	FromID        int64 `json:"from_id"`
	ToID          int64 `json:"to_id"`
	Amount        int64 `json:"amount"`
	SenderBalance int64 `json:"sender_balance"`
}

// HandleGetBalance returns the account balance
// @Summary Get balance
// @Tags ledger
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/balance [get]
func HandleGetBalance(ledgerService ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(r, w, "id")
		if !ok {
			return
		}

		balance, err := ledgerService.GetBalance(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get balance", err)
			return
		}

		respondJSON(w, http.StatusOK, BalanceResponse{AccountID: id, Dollars: balance})
	}
}

// HandleCredit adds dollars to an account
// @Summary Credit account
// @Tags ledger
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AmountRequest true "Amount to credit"
// @Success 200 {object} BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/credit [post]
func HandleCredit(ledgerService ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(r, w, "id")
		if !ok {
			return
		}

		var req AmountRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Credit account"); err != nil {
			return
		}

		balance, err := ledgerService.Credit(r.Context(), id, req.Amount)
		if err != nil {
			respondServiceError(w, r, "credit account", err)
			return
		}

		metrics.DollarsMoved.WithLabelValues("credit").Add(float64(req.Amount))
		respondJSON(w, http.StatusOK, BalanceResponse{AccountID: id, Dollars: balance})
	}
}

// HandleDebit removes dollars from an account if the balance covers it
// @Summary Debit account
// @Tags ledger
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body AmountRequest true "Amount to debit"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/accounts/{id}/debit [post]
func HandleDebit(ledgerService ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := PathID(r, w, "id")
		if !ok {
			return
		}

		var req AmountRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Debit account"); err != nil {
			return
		}

		balance, err := ledgerService.Debit(r.Context(), id, req.Amount)
		if err != nil {
			respondServiceError(w, r, "debit account", err)
			return
		}

		metrics.DollarsMoved.WithLabelValues("debit").Add(float64(req.Amount))
		respondJSON(w, http.StatusOK, BalanceResponse{AccountID: id, Dollars: balance})
	}
}

// HandleTransfer moves dollars between two accounts
// @Summary Transfer dollars
// @Description Atomically debits the sender and credits the recipient
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/transfer [post]
func HandleTransfer(ledgerService ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer"); err != nil {
			return
		}

		balance, err := ledgerService.Transfer(r.Context(), req.FromID, req.ToID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "transfer", err)
			return
		}

		metrics.TransfersTotal.Inc()
		metrics.DollarsMoved.WithLabelValues("transfer").Add(float64(req.Amount))
		respondJSON(w, http.StatusOK, TransferResponse{
			FromID:        req.FromID,
			ToID:          req.ToID,
			Amount:        req.Amount,
			SenderBalance: balance,
		})
	}
}

// HandleGamble wagers a stake on a uniform draw
// @Summary Gamble
// @Description Draws uniformly over [0, 2×stake]; above the stake wins the difference, below loses the stake, equal is a push
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body GambleRequest true "Stake details"
// @Success 200 {object} domain.GambleResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/gamble [post]
func HandleGamble(ledgerService ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GambleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Gamble"); err != nil {
			return
		}

		result, err := ledgerService.Gamble(r.Context(), req.AccountID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "gamble", err)
			return
		}

		metrics.RecordGamble(result.Stake, result.Won(), result.Push())
		respondJSON(w, http.StatusOK, result)
	}
}
