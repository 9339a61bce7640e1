package airdrop

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mingleton/dawson-rp/internal/domain"
	"github.com/mingleton/dawson-rp/internal/logger"
)

// Ledger is the slice of the ledger service the arbiter needs.
type Ledger interface {
	Credit(ctx context.Context, accountID int64, amount int64) (int64, error)
}

// Service defines the interface for airdrop operations
type Service interface {
	// Start activates a new prize. A prize of zero draws a random amount
	// within the configured bounds; a ttl of zero uses the configured TTL.
	Start(ctx context.Context, prize int64, ttl time.Duration) (*domain.AirdropStatus, error)

	// Claim awards the active prize to the caller. Exactly one claimant
	// succeeds; every other concurrent caller gets domain.ErrNoActivePrize.
	Claim(ctx context.Context, accountID int64) (*domain.AirdropClaim, error)

	// Status returns a snapshot of the arbiter.
	Status(ctx context.Context) *domain.AirdropStatus

	// Shutdown cancels any pending expiry timer.
	Shutdown(ctx context.Context) error
}

// Config bounds the prize and its lifetime.
type Config struct {
	MinPrize   int64
	MaxPrize   int64
	DefaultTTL time.Duration
}

type service struct {
	ledger Ledger
	cfg    Config

	// mu guards every field below. Claim holds it across the ledger credit;
	// that is what makes the claim exactly-once.
	mu         sync.Mutex
	state      domain.AirdropState
	prize      int64
	deadline   time.Time
	winnerID   *int64
	generation uint64
	timer      *time.Timer

	// rollPrize returns a uniform integer in [min, max]. Swappable in tests.
	rollPrize func(min, max int64) int64
}

// NewService creates a new airdrop service
func NewService(ledger Ledger, cfg Config) Service {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var rngMu sync.Mutex
	return &service{
		ledger: ledger,
		cfg:    cfg,
		state:  domain.AirdropIdle,
		rollPrize: func(min, max int64) int64 {
			rngMu.Lock()
			defer rngMu.Unlock()
			return min + rng.Int63n(max-min+1)
		},
	}
}

// Start transitions the arbiter to Active and arms the expiry timer
func (s *service) Start(ctx context.Context, prize int64, ttl time.Duration) (*domain.AirdropStatus, error) {
	if prize < 0 {
		return nil, fmt.Errorf("%w: prize %d", domain.ErrInvalidAmount, prize)
	}
	if prize == 0 {
		prize = s.rollPrize(s.cfg.MinPrize, s.cfg.MaxPrize)
	}
	if ttl <= 0 {
		ttl = s.cfg.DefaultTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.AirdropActive {
		return nil, domain.ErrPrizeActive
	}

	s.state = domain.AirdropActive
	s.prize = prize
	s.deadline = time.Now().Add(ttl)
	s.winnerID = nil
	s.generation++

	// The generation pins the timer to this activation. A stale timer firing
	// after a claim and a fresh start must not expire the new prize.
	gen := s.generation
	s.timer = time.AfterFunc(ttl, func() { s.expire(gen) })

	logger.FromContext(ctx).Info("Airdrop started",
		"prize", prize, "ttl", ttl, "generation", gen)
	return s.statusLocked(), nil
}

// Claim transitions Active to Claimed and credits the winner. The mutex is
// held across the credit so a second claimant cannot slip in between the
// state change and the payout.
func (s *service) Claim(ctx context.Context, accountID int64) (*domain.AirdropClaim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.AirdropActive || time.Now().After(s.deadline) {
		return nil, domain.ErrNoActivePrize
	}

	balance, err := s.ledger.Credit(ctx, accountID, s.prize)
	if err != nil {
		// The prize stays on the table; the deadline decides its fate.
		return nil, fmt.Errorf("failed to credit prize: %w", err)
	}

	s.state = domain.AirdropClaimed
	winner := accountID
	s.winnerID = &winner
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	claim := &domain.AirdropClaim{
		AccountID:    accountID,
		PrizeDollars: s.prize,
		NewBalance:   balance,
	}

	logger.FromContext(ctx).Info("Airdrop claimed",
		"account_id", accountID, "prize", s.prize, "balance", balance)
	return claim, nil
}

// Status returns a snapshot of the arbiter
func (s *service) Status(_ context.Context) *domain.AirdropStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

// Shutdown cancels the expiry timer
func (s *service) Shutdown(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	return nil
}

// expire moves an unclaimed prize to Expired. A generation mismatch means
// the prize this timer was armed for is already settled.
func (s *service) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen || s.state != domain.AirdropActive {
		return
	}

	s.state = domain.AirdropExpired
	s.timer = nil
	logger.FromContext(context.Background()).Info("Airdrop expired",
		"prize", s.prize, "generation", gen)
}

// statusLocked builds a snapshot; the caller must hold mu.
func (s *service) statusLocked() *domain.AirdropStatus {
	status := &domain.AirdropStatus{State: s.state}
	if s.state == domain.AirdropActive {
		status.PrizeDollars = s.prize
		deadline := s.deadline
		status.Deadline = &deadline
	}
	if s.winnerID != nil {
		winner := *s.winnerID
		status.WinnerID = &winner
	}
	return status
}
