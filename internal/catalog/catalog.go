package catalog

// Type describes one item type: how many units may sit in a displayed stack
// and whether the type can be equipped.
type Type struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EmojiName      string `json:"emoji_name"`
	MaxStackAmount int    `json:"max_stack_amount"`
	IsEquippable   bool   `json:"is_equippable"`
}

// Rarity describes one rarity band. Rarity only affects display and item
// stat capacity; the core passes it through untouched.
type Rarity struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	EmojiName   string `json:"emoji_name"`
	Description string `json:"description,omitempty"`
}

// Catalog is the read-only reference data for item types and rarities.
// Loaded once at startup; safe for concurrent reads.
type Catalog struct {
	typesByID      map[int]Type
	typesByName    map[string]Type
	raritiesByID   map[int]Rarity
	raritiesByName map[string]Rarity

	types    []Type
	rarities []Rarity
}

// TypeByID looks up an item type.
func (c *Catalog) TypeByID(id int) (Type, bool) {
	t, ok := c.typesByID[id]
	return t, ok
}

// TypeByName looks up an item type by its lowercase name.
func (c *Catalog) TypeByName(name string) (Type, bool) {
	t, ok := c.typesByName[name]
	return t, ok
}

// RarityByID looks up a rarity.
func (c *Catalog) RarityByID(id int) (Rarity, bool) {
	r, ok := c.raritiesByID[id]
	return r, ok
}

// RarityByName looks up a rarity by its lowercase name.
func (c *Catalog) RarityByName(name string) (Rarity, bool) {
	r, ok := c.raritiesByName[name]
	return r, ok
}

// Types returns all types in config order.
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.types))
	copy(out, c.types)
	return out
}

// Rarities returns all rarities in config order.
func (c *Catalog) Rarities() []Rarity {
	out := make([]Rarity, len(c.rarities))
	copy(out, c.rarities)
	return out
}
