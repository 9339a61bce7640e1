package ledger

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mingleton/dawson-rp/internal/domain"
	"github.com/mingleton/dawson-rp/internal/logger"
	"github.com/mingleton/dawson-rp/internal/repository"
)

// Service defines the interface for ledger operations
type Service interface {
	GetBalance(ctx context.Context, accountID int64) (int64, error)
	Credit(ctx context.Context, accountID int64, amount int64) (int64, error)
	Debit(ctx context.Context, accountID int64, amount int64) (int64, error)
	Transfer(ctx context.Context, fromID, toID, amount int64) (int64, error)
	Gamble(ctx context.Context, accountID int64, stake int64) (*domain.GambleResult, error)
}

type service struct {
	repo         repository.Account
	minStake     int64
	storeTimeout time.Duration

	// draw returns a uniform integer in [0, n]. Swappable in tests; the
	// default uses the process RNG behind a mutex since rand.Rand is not
	// goroutine safe.
	draw   func(n int64) int64
	drawMu sync.Mutex
}

// NewService creates a new ledger service
func NewService(repo repository.Account, minStake int64, storeTimeout time.Duration) Service {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &service{
		repo:         repo,
		minStake:     minStake,
		storeTimeout: storeTimeout,
	}
	s.draw = func(n int64) int64 {
		s.drawMu.Lock()
		defer s.drawMu.Unlock()
		return rng.Int63n(n + 1)
	}
	return s
}

// storeCtx bounds a repository call so a wedged store surfaces as
// domain.ErrStoreUnavailable instead of hanging the request.
func (s *service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// GetBalance returns the account's current balance
func (s *service) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.GetBalance(sctx, accountID)
}

// Credit adds amount to the account and returns the new balance
func (s *service) Credit(ctx context.Context, accountID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	balance, err := s.repo.Credit(sctx, accountID, amount)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info("Account credited",
		"account_id", accountID, "amount", amount, "balance", balance)
	return balance, nil
}

// Debit subtracts amount from the account if the balance covers it
func (s *service) Debit(ctx context.Context, accountID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	balance, err := s.repo.Debit(sctx, accountID, amount)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info("Account debited",
		"account_id", accountID, "amount", amount, "balance", balance)
	return balance, nil
}

// Transfer moves amount between two accounts atomically and returns the
// sender's new balance.
func (s *service) Transfer(ctx context.Context, fromID, toID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if fromID == toID {
		return 0, fmt.Errorf("%w: id %d", domain.ErrSameAccount, fromID)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	balance, err := s.repo.Transfer(sctx, fromID, toID, amount)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info("Transfer completed",
		"from", fromID, "to", toID, "amount", amount, "sender_balance", balance)
	return balance, nil
}

// Gamble wagers stake on a uniform draw over [0, 2*stake]. A draw above the
// stake credits the difference, a draw below it debits the full stake, and a
// draw exactly equal to the stake moves no money.
func (s *service) Gamble(ctx context.Context, accountID int64, stake int64) (*domain.GambleResult, error) {
	if stake <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, stake)
	}
	if stake < s.minStake {
		return nil, fmt.Errorf("%w: stake %d, minimum %d", domain.ErrStakeTooLow, stake, s.minStake)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	// The stake must be covered before the draw; a loss the account cannot
	// pay would otherwise leave the outcome half-applied.
	balance, err := s.repo.GetBalance(sctx, accountID)
	if err != nil {
		return nil, err
	}
	if balance < stake {
		return nil, fmt.Errorf("%w: balance %d, stake %d", domain.ErrInsufficientFunds, balance, stake)
	}

	outcome := s.draw(2 * stake)

	result := &domain.GambleResult{
		AccountID: accountID,
		Stake:     stake,
		Outcome:   outcome,
	}

	switch {
	case outcome > stake:
		result.NetChange = outcome - stake
		result.NewBalance, err = s.repo.Credit(sctx, accountID, result.NetChange)
	case outcome < stake:
		result.NetChange = -stake
		result.NewBalance, err = s.repo.Debit(sctx, accountID, stake)
	default:
		// Push: the draw matched the stake exactly.
		result.NetChange = 0
		result.NewBalance = balance
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Gamble resolved",
		"account_id", accountID, "stake", stake, "outcome", outcome,
		"net_change", result.NetChange, "balance", result.NewBalance)
	return result, nil
}
