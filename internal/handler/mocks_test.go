package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// MockAccountService mocks account.Service.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) AdjustHealth(ctx context.Context, id int64, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// MockLedgerService mocks ledger.Service.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, accountID int64, amount int64) (int64, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Debit(ctx context.Context, accountID int64, amount int64) (int64, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, fromID, toID, amount int64) (int64, error) {
	args := m.Called(ctx, fromID, toID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) Gamble(ctx context.Context, accountID int64, stake int64) (*domain.GambleResult, error) {
	args := m.Called(ctx, accountID, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GambleResult), args.Error(1)
}

// MockInventoryService mocks inventory.Service.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) CreateStack(ctx context.Context, ownerID int64, name string, typeID, rarityID, amount int, attributes map[string]any) ([]uuid.UUID, error) {
	args := m.Called(ctx, ownerID, name, typeID, rarityID, amount, attributes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockInventoryService) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockInventoryService) GetInventory(ctx context.Context, ownerID int64) ([]domain.InventoryStack, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryStack), args.Error(1)
}

func (m *MockInventoryService) TransferItem(ctx context.Context, id uuid.UUID, newOwnerID int64) error {
	args := m.Called(ctx, id, newOwnerID)
	return args.Error(0)
}

func (m *MockInventoryService) Equip(ctx context.Context, accountID int64, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

func (m *MockInventoryService) Unequip(ctx context.Context, accountID int64, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

func (m *MockInventoryService) Drop(ctx context.Context, accountID int64, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

func (m *MockInventoryService) Delete(ctx context.Context, accountID int64, id uuid.UUID) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

// MockAirdropService mocks airdrop.Service.
type MockAirdropService struct {
	mock.Mock
}

func (m *MockAirdropService) Start(ctx context.Context, prize int64, ttl time.Duration) (*domain.AirdropStatus, error) {
	args := m.Called(ctx, prize, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirdropStatus), args.Error(1)
}

func (m *MockAirdropService) Claim(ctx context.Context, accountID int64) (*domain.AirdropClaim, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirdropClaim), args.Error(1)
}

func (m *MockAirdropService) Status(ctx context.Context) *domain.AirdropStatus {
	args := m.Called(ctx)
	return args.Get(0).(*domain.AirdropStatus)
}

func (m *MockAirdropService) Shutdown() {
	m.Called()
}
