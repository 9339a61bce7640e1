package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mingleton/dawson-rp/internal/catalog"
	"github.com/mingleton/dawson-rp/internal/domain"
	"github.com/mingleton/dawson-rp/internal/logger"
	"github.com/mingleton/dawson-rp/internal/repository"
)

// Service defines the interface for inventory operations
type Service interface {
	CreateStack(ctx context.Context, ownerID int64, name string, typeID, rarityID, amount int, attributes map[string]any) ([]uuid.UUID, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetInventory(ctx context.Context, ownerID int64) ([]domain.InventoryStack, error)
	TransferItem(ctx context.Context, id uuid.UUID, newOwnerID int64) error
	Equip(ctx context.Context, accountID int64, id uuid.UUID) error
	Unequip(ctx context.Context, accountID int64, id uuid.UUID) error
	Drop(ctx context.Context, accountID int64, id uuid.UUID) error
	Delete(ctx context.Context, accountID int64, id uuid.UUID) error
}

type service struct {
	repo         repository.Item
	catalog      *catalog.Catalog
	storeTimeout time.Duration
}

// NewService creates a new inventory service
func NewService(repo repository.Item, cat *catalog.Catalog, storeTimeout time.Duration) Service {
	return &service{
		repo:         repo,
		catalog:      cat,
		storeTimeout: storeTimeout,
	}
}

func (s *service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// CreateStack mints amount units of one item for the owner. Units are
// individual rows; the stack only exists as a read-time grouping.
func (s *service) CreateStack(ctx context.Context, ownerID int64, name string, typeID, rarityID, amount int, attributes map[string]any) ([]uuid.UUID, error) {
	itemType, ok := s.catalog.TypeByID(typeID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUnknownType, typeID)
	}
	if _, ok := s.catalog.RarityByID(rarityID); !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrUnknownRarity, rarityID)
	}
	if amount < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	if amount > itemType.MaxStackAmount {
		return nil, fmt.Errorf("%w: %d > %d for type %s",
			domain.ErrAmountExceedsMax, amount, itemType.MaxStackAmount, itemType.Name)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	exists, err := s.repo.AccountExists(sctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, ownerID)
	}

	units := make([]domain.Item, amount)
	for i := range units {
		units[i] = domain.Item{
			OwnerID:    ownerID,
			Name:       name,
			TypeID:     typeID,
			RarityID:   rarityID,
			Attributes: attributes,
		}
	}

	ids, err := s.repo.CreateItems(sctx, units)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Items created",
		"owner_id", ownerID, "name", name, "amount", amount)
	return ids, nil
}

// GetItem returns a single unit by id
func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.GetItem(sctx, id)
}

// GetInventory returns the owner's items grouped into display stacks.
// Units group by name and equipped flag, so a worn sword stacks apart from
// a spare one.
func (s *service) GetInventory(ctx context.Context, ownerID int64) ([]domain.InventoryStack, error) {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	items, err := s.repo.GetItemsByOwner(sctx, ownerID)
	if err != nil {
		return nil, err
	}

	type stackKey struct {
		name     string
		equipped bool
	}
	index := make(map[stackKey]int)
	stacks := make([]domain.InventoryStack, 0, len(items))
	for _, it := range items {
		key := stackKey{name: it.Name, equipped: it.IsEquipped}
		pos, ok := index[key]
		if !ok {
			pos = len(stacks)
			index[key] = pos
			stacks = append(stacks, domain.InventoryStack{
				Name:       it.Name,
				TypeID:     it.TypeID,
				RarityID:   it.RarityID,
				IsEquipped: it.IsEquipped,
				Attributes: it.Attributes,
			})
		}
		stacks[pos].ItemIDs = append(stacks[pos].ItemIDs, it.ID)
		stacks[pos].Amount++
	}
	return stacks, nil
}

// TransferItem reassigns a unit to a new owner. Units are indivisible; a
// stack moves one unit at a time. The equipped flag clears on arrival.
func (s *service) TransferItem(ctx context.Context, id uuid.UUID, newOwnerID int64) error {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	item, err := s.activeItem(sctx, id)
	if err != nil {
		return err
	}
	if item.OwnerID == newOwnerID {
		return fmt.Errorf("%w: item already owned by %d", domain.ErrSameAccount, newOwnerID)
	}

	exists, err := s.repo.AccountExists(sctx, newOwnerID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %d", domain.ErrAccountNotFound, newOwnerID)
	}

	if err := s.repo.UpdateOwner(sctx, id, newOwnerID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Item transferred",
		"item_id", id, "from", item.OwnerID, "to", newOwnerID)
	return nil
}

// Equip marks the unit as worn
func (s *service) Equip(ctx context.Context, accountID int64, id uuid.UUID) error {
	return s.setEquipped(ctx, accountID, id, true)
}

// Unequip clears the worn flag
func (s *service) Unequip(ctx context.Context, accountID int64, id uuid.UUID) error {
	return s.setEquipped(ctx, accountID, id, false)
}

func (s *service) setEquipped(ctx context.Context, accountID int64, id uuid.UUID, equipped bool) error {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	item, err := s.ownedItem(sctx, accountID, id)
	if err != nil {
		return err
	}
	if item.IsDropped {
		return fmt.Errorf("%w: id %s (dropped)", domain.ErrItemNotFound, id)
	}

	itemType, ok := s.catalog.TypeByID(item.TypeID)
	if !ok {
		return fmt.Errorf("%w: id %d", domain.ErrUnknownType, item.TypeID)
	}
	if !itemType.IsEquippable {
		return fmt.Errorf("%w: %s", domain.ErrNotEquippable, itemType.Name)
	}
	if item.IsEquipped == equipped {
		return fmt.Errorf("%w: equipped=%t", domain.ErrAlreadyInState, equipped)
	}

	if err := s.repo.SetEquipped(sctx, id, equipped); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Item equip state changed",
		"item_id", id, "account_id", accountID, "equipped", equipped)
	return nil
}

// Drop hides the unit from the owner's inventory without destroying it.
// A worn unit is taken off as part of the drop.
func (s *service) Drop(ctx context.Context, accountID int64, id uuid.UUID) error {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	item, err := s.ownedItem(sctx, accountID, id)
	if err != nil {
		return err
	}
	if item.IsDropped {
		return fmt.Errorf("%w: already dropped", domain.ErrAlreadyInState)
	}

	if item.IsEquipped {
		if err := s.repo.SetEquipped(sctx, id, false); err != nil {
			return err
		}
	}
	if err := s.repo.SetDropped(sctx, id, true); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Item dropped", "item_id", id, "account_id", accountID)
	return nil
}

// Delete removes the unit permanently. Nothing else ever deletes item rows.
func (s *service) Delete(ctx context.Context, accountID int64, id uuid.UUID) error {
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()

	if _, err := s.ownedItem(sctx, accountID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteItem(sctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Item deleted", "item_id", id, "account_id", accountID)
	return nil
}

// activeItem fetches a unit and rejects dropped ones. Dropped units are
// invisible to every operation except the owner's own drop bookkeeping.
func (s *service) activeItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.IsDropped {
		return nil, fmt.Errorf("%w: id %s (dropped)", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// ownedItem fetches a unit and verifies the caller owns it.
func (s *service) ownedItem(ctx context.Context, accountID int64, id uuid.UUID) (*domain.Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != accountID {
		return nil, fmt.Errorf("%w: item %s", domain.ErrNotOwner, id)
	}
	return item, nil
}
