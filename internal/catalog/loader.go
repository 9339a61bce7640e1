package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrDuplicateID   = errors.New("duplicate identifier")
)

// Default config paths, relative to the working directory.
const (
	TypesPath    = "configs/items/types.json"
	RaritiesPath = "configs/items/rarities.json"
)

// typesConfig is the on-disk shape of the type catalog.
type typesConfig struct {
	Version string `json:"version"`
	Types   []Type `json:"types"`
}

// raritiesConfig is the on-disk shape of the rarity catalog.
type raritiesConfig struct {
	Version  string   `json:"version"`
	Rarities []Rarity `json:"rarities"`
}

// New builds a catalog from in-memory definitions, applying the same
// validation as Load.
func New(types []Type, rarities []Rarity) (*Catalog, error) {
	return build(types, rarities)
}

// Load reads and validates both catalog files and assembles the lookup maps.
func Load(typesPath, raritiesPath string) (*Catalog, error) {
	var tc typesConfig
	if err := readJSON(typesPath, &tc); err != nil {
		return nil, err
	}
	var rc raritiesConfig
	if err := readJSON(raritiesPath, &rc); err != nil {
		return nil, err
	}
	return build(tc.Types, rc.Rarities)
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	return nil
}

func build(types []Type, rarities []Rarity) (*Catalog, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: no item types defined", ErrInvalidConfig)
	}
	if len(rarities) == 0 {
		return nil, fmt.Errorf("%w: no rarities defined", ErrInvalidConfig)
	}

	c := &Catalog{
		typesByID:      make(map[int]Type, len(types)),
		typesByName:    make(map[string]Type, len(types)),
		raritiesByID:   make(map[int]Rarity, len(rarities)),
		raritiesByName: make(map[string]Rarity, len(rarities)),
		types:          types,
		rarities:       rarities,
	}

	for i, t := range types {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: type at index %d has no name", ErrInvalidConfig, i)
		}
		if t.MaxStackAmount < 1 {
			return nil, fmt.Errorf("%w: type %q has max_stack_amount %d", ErrInvalidConfig, t.Name, t.MaxStackAmount)
		}
		if _, exists := c.typesByID[t.ID]; exists {
			return nil, fmt.Errorf("%w: type id %d", ErrDuplicateID, t.ID)
		}
		if _, exists := c.typesByName[t.Name]; exists {
			return nil, fmt.Errorf("%w: type name %q", ErrDuplicateID, t.Name)
		}
		c.typesByID[t.ID] = t
		c.typesByName[t.Name] = t
	}

	for i, r := range rarities {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rarity at index %d has no name", ErrInvalidConfig, i)
		}
		if _, exists := c.raritiesByID[r.ID]; exists {
			return nil, fmt.Errorf("%w: rarity id %d", ErrDuplicateID, r.ID)
		}
		if _, exists := c.raritiesByName[r.Name]; exists {
			return nil, fmt.Errorf("%w: rarity name %q", ErrDuplicateID, r.Name)
		}
		c.raritiesByID[r.ID] = r
		c.raritiesByName[r.Name] = r
	}

	return c, nil
}
