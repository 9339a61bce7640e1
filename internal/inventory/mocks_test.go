package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) AccountExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateItems(ctx context.Context, items []domain.Item) ([]uuid.UUID, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockRepository) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) GetItemsByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockRepository) UpdateOwner(ctx context.Context, id uuid.UUID, newOwnerID int64) error {
	args := m.Called(ctx, id, newOwnerID)
	return args.Error(0)
}

func (m *MockRepository) SetEquipped(ctx context.Context, id uuid.UUID, equipped bool) error {
	args := m.Called(ctx, id, equipped)
	return args.Error(0)
}

func (m *MockRepository) SetDropped(ctx context.Context, id uuid.UUID, dropped bool) error {
	args := m.Called(ctx, id, dropped)
	return args.Error(0)
}

func (m *MockRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
