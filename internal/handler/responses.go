package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mingleton/dawson-rp/internal/domain"
	"github.com/mingleton/dawson-rp/internal/logger"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Service call failed",
		"operation", opName, "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."

	ErrMsgAccountNotFoundError = "Account not found"
	ErrMsgAccountExistsError   = "Account already exists"

	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgInvalidAmountError  = "Amount must be a positive number"
	ErrMsgSameAccountError    = "Sender and recipient must be different accounts"
	ErrMsgStakeTooLowError    = "Stake is below the table minimum"

	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgNotOwnerError        = "That item belongs to someone else"
	ErrMsgNotEquippableError   = "That item cannot be equipped"
	ErrMsgAlreadyInStateError  = "The item is already in that state"
	ErrMsgStackLimitError      = "That many units will not fit in one stack"
	ErrMsgUnknownTypeError     = "Unknown item type"
	ErrMsgUnknownRarityError   = "Unknown item rarity"

	ErrMsgNoActivePrizeError = "There is no airdrop to claim"
	ErrMsgPrizeActiveError   = "An airdrop is already in the air"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, ErrMsgAccountExistsError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrSameAccount):
		return http.StatusBadRequest, ErrMsgSameAccountError
	case errors.Is(err, domain.ErrStakeTooLow):
		return http.StatusBadRequest, ErrMsgStakeTooLowError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrNotEquippable):
		return http.StatusBadRequest, ErrMsgNotEquippableError
	case errors.Is(err, domain.ErrAlreadyInState):
		return http.StatusConflict, ErrMsgAlreadyInStateError
	case errors.Is(err, domain.ErrAmountExceedsMax):
		return http.StatusBadRequest, ErrMsgStackLimitError
	case errors.Is(err, domain.ErrUnknownType):
		return http.StatusBadRequest, ErrMsgUnknownTypeError
	case errors.Is(err, domain.ErrUnknownRarity):
		return http.StatusBadRequest, ErrMsgUnknownRarityError
	case errors.Is(err, domain.ErrNoActivePrize):
		return http.StatusConflict, ErrMsgNoActivePrizeError
	case errors.Is(err, domain.ErrPrizeActive):
		return http.StatusConflict, ErrMsgPrizeActiveError
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
