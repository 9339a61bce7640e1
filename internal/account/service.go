package account

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

// Starting state for a freshly created account.
const (
	StartingDollars = 100
	StartingHP      = 100

	// Ability scores roll as 5 + d12, giving a 6..17 spread.
	abilityBase = 5
	abilityDie  = 12
)

// Service defines the interface for account operations
type Service interface {
	CreateAccount(ctx context.Context, id int64) (*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	AdjustHealth(ctx context.Context, id int64, delta int) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type service struct {
	repo             repository.Account
	cache            *accountCache
	leaderboardLimit int
	storeTimeout     time.Duration

	// rollDie returns a uniform integer in [1, sides]. Swappable in tests.
	rollDie func(sides int) int
	rollMu  sync.Mutex
}

// NewService creates a new account service
func NewService(repo repository.Account, leaderboardLimit int, storeTimeout time.Duration) Service {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &service{
		repo:             repo,
		cache:            newAccountCache(DefaultCacheSize, DefaultCacheTTL),
		leaderboardLimit: leaderboardLimit,
		storeTimeout:     storeTimeout,
	}
	s.rollDie = func(sides int) int {
		s.rollMu.Lock()
		defer s.rollMu.Unlock()
		return rng.Intn(sides) + 1
	}
	return s
}

func (s *service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// CreateAccount registers a new account with starting funds, full health and
// freshly rolled ability scores. The id comes from the platform; creating an
// id that already exists returns domain.ErrAccountExists.
func (s *service) CreateAccount(ctx context.Context, id int64) (*domain.Account, error) {
	account := &domain.Account{
		ID:      id,
		Dollars: StartingDollars,
		HP:      StartingHP,
		Abilities: domain.AbilityScores{
			Strength:     abilityBase + s.rollDie(abilityDie),
			Dexterity:    abilityBase + s.rollDie(abilityDie),
			Constitution: abilityBase + s.rollDie(abilityDie),
			Intelligence: abilityBase + s.rollDie(abilityDie),
			Wisdom:       abilityBase + s.rollDie(abilityDie),
			Charisma:     abilityBase + s.rollDie(abilityDie),
		},
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if err := s.repo.CreateAccount(sctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.cache.Set(account)
	logger.FromContext(ctx).Info("Account created",
		"account_id", id, "dollars", account.Dollars)
	return account, nil
}

// GetAccount returns the account profile. Reads are served from a short-lived
// cache; balances mutated through the ledger may trail by up to the TTL.
func (s *service) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached, nil
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	account, err := s.repo.GetAccount(sctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(account)
	return account, nil
}

// AdjustHealth applies a delta to the account's hit points, clamped to 0-100
func (s *service) AdjustHealth(ctx context.Context, id int64, delta int) (int, error) {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	hp, err := s.repo.AdjustHealth(sctx, id, delta)
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(id)
	logger.FromContext(ctx).Info("Health adjusted",
		"account_id", id, "delta", delta, "hp", hp)
	return hp, nil
}

// Leaderboard returns the top accounts by balance. The configured limit is
// both the default and the ceiling for caller-supplied limits.
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 || limit > s.leaderboardLimit {
		limit = s.leaderboardLimit
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.Leaderboard(sctx, limit)
}
