package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// AccountRepository implements the account repository for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount inserts a new account row
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, dollars, hp, str, dex, con, intl, wis, cha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		account.ID, account.Dollars, account.HP,
		account.Abilities.Strength, account.Abilities.Dexterity, account.Abilities.Constitution,
		account.Abilities.Intelligence, account.Abilities.Wisdom, account.Abilities.Charisma,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: id %d", domain.ErrAccountExists, account.ID)
		}
		return storeErr("failed to insert account", err)
	}
	return nil
}

// GetAccount returns the full account row
func (r *AccountRepository) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT id, dollars, hp, str, dex, con, intl, wis, cha
		FROM accounts WHERE id = $1
	`
	var a domain.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Dollars, &a.HP,
		&a.Abilities.Strength, &a.Abilities.Dexterity, &a.Abilities.Constitution,
		&a.Abilities.Intelligence, &a.Abilities.Wisdom, &a.Abilities.Charisma,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, id)
		}
		return nil, storeErr("failed to get account", err)
	}
	return &a, nil
}

// GetBalance returns the current balance
func (r *AccountRepository) GetBalance(ctx context.Context, id int64) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, `SELECT dollars FROM accounts WHERE id = $1`, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, id)
		}
		return 0, storeErr("failed to get balance", err)
	}
	return balance, nil
}

// Credit atomically adds amount and returns the new balance.
// The read-modify-write happens inside the statement, so concurrent credits
// on the same account cannot lose updates.
func (r *AccountRepository) Credit(ctx context.Context, id int64, amount int64) (int64, error) {
	query := `
		UPDATE accounts
		SET dollars = dollars + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING dollars
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, id)
		}
		return 0, storeErr("failed to credit account", err)
	}
	return balance, nil
}

// Debit atomically subtracts amount if the balance covers it. The guard in
// the WHERE clause is what keeps the balance non-negative under concurrency;
// a separate select-then-update pair would not.
func (r *AccountRepository) Debit(ctx context.Context, id int64, amount int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, storeErr("failed to begin transaction", err)
	}
	defer SafeRollback(ctx, tx)

	balance, err := debitTx(ctx, tx, id, amount)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, storeErr("failed to commit debit", err)
	}
	return balance, nil
}

// debitTx performs the guarded debit inside an existing transaction.
func debitTx(ctx context.Context, tx pgx.Tx, id int64, amount int64) (int64, error) {
	query := `
		UPDATE accounts
		SET dollars = dollars - $1, updated_at = NOW()
		WHERE id = $2 AND dollars >= $1
		RETURNING dollars
	`
	var balance int64
	err := tx.QueryRow(ctx, query, amount, id).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, storeErr("failed to debit account", err)
	}

	// Guard rejected the update: tell a missing account from a short balance.
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists); err != nil {
		return 0, storeErr("failed to check account", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, id)
	}
	return 0, fmt.Errorf("%w: account %d", domain.ErrInsufficientFunds, id)
}

// Transfer debits from and credits to inside one transaction
func (r *AccountRepository) Transfer(ctx context.Context, fromID, toID, amount int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, storeErr("failed to begin transaction", err)
	}
	defer SafeRollback(ctx, tx)

	fromBalance, err := debitTx(ctx, tx, fromID, amount)
	if err != nil {
		return 0, err
	}

	creditQuery := `
		UPDATE accounts
		SET dollars = dollars + $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := tx.Exec(ctx, creditQuery, amount, toID)
	if err != nil {
		return 0, storeErr("failed to credit recipient", err)
	}
	if tag.RowsAffected() == 0 {
		// Rolling back restores the sender's debit; no money vanishes.
		return 0, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, toID)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, storeErr("failed to commit transfer", err)
	}
	return fromBalance, nil
}

// AdjustHealth applies a clamped delta in a single statement
func (r *AccountRepository) AdjustHealth(ctx context.Context, id int64, delta int) (int, error) {
	query := `
		UPDATE accounts
		SET hp = LEAST(100, GREATEST(0, hp + $1)), updated_at = NOW()
		WHERE id = $2
		RETURNING hp
	`
	var hp int
	err := r.db.QueryRow(ctx, query, delta, id).Scan(&hp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, id)
		}
		return 0, storeErr("failed to adjust health", err)
	}
	return hp, nil
}

// Leaderboard returns up to limit accounts ordered by balance descending
func (r *AccountRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT id, dollars FROM accounts
		ORDER BY dollars DESC, id ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, storeErr("failed to query leaderboard", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.AccountID, &e.Dollars); err != nil {
			return nil, storeErr("failed to scan leaderboard row", err)
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read leaderboard rows", err)
	}
	return entries, nil
}
