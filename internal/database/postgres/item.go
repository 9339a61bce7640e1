package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// ItemRepository implements the item repository for PostgreSQL
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// AccountExists reports whether an account row exists
func (r *ItemRepository) AccountExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, storeErr("failed to check account", err)
	}
	return exists, nil
}

// CreateItems inserts all units in one transaction via a batch. Either every
// row lands or none do.
func (r *ItemRepository) CreateItems(ctx context.Context, items []domain.Item) ([]uuid.UUID, error) {
	if len(items) == 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, storeErr("failed to begin transaction", err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO items (owner_id, name, type_id, rarity_id, is_equipped, is_dropped, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	batch := &pgx.Batch{}
	for _, it := range items {
		attrs := it.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		batch.Queue(query, it.OwnerID, it.Name, it.TypeID, it.RarityID, it.IsEquipped, it.IsDropped, attrs)
	}

	results := tx.SendBatch(ctx, batch)
	ids := make([]uuid.UUID, 0, len(items))
	for range items {
		var id uuid.UUID
		if err := results.QueryRow().Scan(&id); err != nil {
			_ = results.Close()
			return nil, storeErr("failed to insert item", err)
		}
		ids = append(ids, id)
	}
	if err := results.Close(); err != nil {
		return nil, storeErr("failed to close batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("failed to commit items", err)
	}
	return ids, nil
}

// GetItem returns one unit by id
func (r *ItemRepository) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT id, owner_id, name, type_id, rarity_id, is_equipped, is_dropped, attributes
		FROM items WHERE id = $1
	`
	var it domain.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.OwnerID, &it.Name, &it.TypeID, &it.RarityID,
		&it.IsEquipped, &it.IsDropped, &it.Attributes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", domain.ErrItemNotFound, id)
		}
		return nil, storeErr("failed to get item", err)
	}
	return &it, nil
}

// GetItemsByOwner returns the owner's non-dropped units, oldest first so
// derived stacks consume units in acquisition order.
func (r *ItemRepository) GetItemsByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	query := `
		SELECT id, owner_id, name, type_id, rarity_id, is_equipped, is_dropped, attributes
		FROM items
		WHERE owner_id = $1 AND NOT is_dropped
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, storeErr("failed to query items", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(
			&it.ID, &it.OwnerID, &it.Name, &it.TypeID, &it.RarityID,
			&it.IsEquipped, &it.IsDropped, &it.Attributes,
		); err != nil {
			return nil, storeErr("failed to scan item row", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read item rows", err)
	}
	return items, nil
}

// UpdateOwner reassigns a unit to a new account. Ownership transfer always
// clears the equipped flag; gear does not arrive pre-worn.
func (r *ItemRepository) UpdateOwner(ctx context.Context, id uuid.UUID, newOwnerID int64) error {
	query := `
		UPDATE items SET owner_id = $1, is_equipped = FALSE
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, newOwnerID, id)
	if err != nil {
		return storeErr("failed to update item owner", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrItemNotFound, id)
	}
	return nil
}

// SetEquipped flips the equipped flag
func (r *ItemRepository) SetEquipped(ctx context.Context, id uuid.UUID, equipped bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE items SET is_equipped = $1 WHERE id = $2`, equipped, id)
	if err != nil {
		return storeErr("failed to set equipped", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrItemNotFound, id)
	}
	return nil
}

// SetDropped flips the dropped flag
func (r *ItemRepository) SetDropped(ctx context.Context, id uuid.UUID, dropped bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE items SET is_dropped = $1 WHERE id = $2`, dropped, id)
	if err != nil {
		return storeErr("failed to set dropped", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrItemNotFound, id)
	}
	return nil
}

// DeleteItem removes the unit row
func (r *ItemRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return storeErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrItemNotFound, id)
	}
	return nil
}
