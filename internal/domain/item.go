package domain

import "github.com/google/uuid"

// Item represents a single physical item unit. There is no stack count
// column: a "stack" of three swords is three rows sharing owner, name, type
// and rarity, and is only ever assembled at read time.
type Item struct {
	ID         uuid.UUID      `json:"item_id"`
	OwnerID    int64          `json:"owner_id"`
	Name       string         `json:"name"`
	TypeID     int            `json:"type_id"`
	RarityID   int            `json:"rarity_id"`
	IsEquipped bool           `json:"is_equipped"`
	IsDropped  bool           `json:"is_dropped"`
	Attributes map[string]any `json:"attributes"`
}

// InventoryStack is the derived grouping of identical item units. It is
// recomputed on every inventory read and never persisted.
type InventoryStack struct {
	ItemIDs    []uuid.UUID    `json:"item_ids"`
	Name       string         `json:"name"`
	TypeID     int            `json:"type_id"`
	RarityID   int            `json:"rarity_id"`
	Amount     int            `json:"amount"`
	IsEquipped bool           `json:"is_equipped"`
	Attributes map[string]any `json:"attributes"`
}
