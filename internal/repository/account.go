package repository

import (
	"context"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// Account defines the persistence operations for accounts and balances.
// Every mutation here is atomic against the store: a guarded single-statement
// update, or a multi-statement transaction. Callers never see raw queries.
type Account interface {
	// CreateAccount inserts a new account row. Returns domain.ErrAccountExists
	// if the identity already has one.
	CreateAccount(ctx context.Context, account *domain.Account) error

	// GetAccount returns the full account row, or domain.ErrAccountNotFound.
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)

	// GetBalance returns the current balance, or domain.ErrAccountNotFound.
	GetBalance(ctx context.Context, id int64) (int64, error)

	// Credit atomically adds amount (> 0) and returns the new balance.
	Credit(ctx context.Context, id int64, amount int64) (int64, error)

	// Debit atomically subtracts amount (> 0) if the balance covers it.
	// Returns domain.ErrInsufficientFunds without mutating otherwise.
	Debit(ctx context.Context, id int64, amount int64) (int64, error)

	// Transfer debits from and credits to inside one transaction. Either both
	// sides land or neither does. Returns the sender's new balance.
	Transfer(ctx context.Context, fromID, toID, amount int64) (int64, error)

	// AdjustHealth applies a delta clamped to [0, 100] in a single statement
	// and returns the new value.
	AdjustHealth(ctx context.Context, id int64, delta int) (int, error)

	// Leaderboard returns up to limit accounts ordered by balance descending.
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}
