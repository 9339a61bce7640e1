package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound = "account not found"
	ErrMsgAccountExists   = "account already exists"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgSameAccount       = "sender and recipient are the same account"
	ErrMsgStakeTooLow       = "stake below minimum"

	// Item errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgNotOwner          = "item belongs to another account"
	ErrMsgNotEquippable     = "item type is not equippable"
	ErrMsgAlreadyInState    = "item is already in that state"
	ErrMsgAmountExceedsMax  = "amount exceeds the type's stack limit"
	ErrMsgUnknownType       = "unknown item type"
	ErrMsgUnknownRarity     = "unknown item rarity"

	// Airdrop errors
	ErrMsgNoActivePrize = "no active airdrop"
	ErrMsgPrizeActive   = "an airdrop is already active"

	// Store errors
	ErrMsgStoreUnavailable = "store unavailable"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)
	ErrAccountExists   = errors.New(ErrMsgAccountExists)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrSameAccount       = errors.New(ErrMsgSameAccount)
	ErrStakeTooLow       = errors.New(ErrMsgStakeTooLow)

	// Item errors
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrNotOwner         = errors.New(ErrMsgNotOwner)
	ErrNotEquippable    = errors.New(ErrMsgNotEquippable)
	ErrAlreadyInState   = errors.New(ErrMsgAlreadyInState)
	ErrAmountExceedsMax = errors.New(ErrMsgAmountExceedsMax)
	ErrUnknownType      = errors.New(ErrMsgUnknownType)
	ErrUnknownRarity    = errors.New(ErrMsgUnknownRarity)

	// Airdrop errors
	ErrNoActivePrize = errors.New(ErrMsgNoActivePrize)
	ErrPrizeActive   = errors.New(ErrMsgPrizeActive)

	// Store errors
	// The only kind callers may retry; everything else is terminal for the request.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)
