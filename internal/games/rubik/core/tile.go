package core

import (
	"fmt"
	"sort"
)

// TileDefinition holds the rule flags for one tile id.
// Combinations such as Stop+Push are undefined and should not be authored.
type TileDefinition struct {
	ID    uint16
	Name  string
	Glyph rune
	Color string // Presentation hint, never read by rules

	Stop  bool // Blocks movement
	Push  bool // Can be pushed by the player or a shift chain
	Shift bool // Moves with row/column rotation; false anchors the line
	Dead  bool // Kills the player, destroys a pushed box
	Goal  bool // Clears the stage when the player stands on it

	// Inert element tags carried through for presentation.
	Fire bool
	Ice  bool
}

// Catalog is an immutable lookup of tile id to definition.
type Catalog struct {
	defs map[uint16]TileDefinition
}

// NewCatalog builds a catalog. Id 0 is reserved for "empty" and ids must be unique.
func NewCatalog(defs ...TileDefinition) (*Catalog, error) {
	c := &Catalog{defs: make(map[uint16]TileDefinition, len(defs))}
	for _, d := range defs {
		if d.ID == 0 {
			return nil, fmt.Errorf("catalog: tile %q uses reserved id 0", d.Name)
		}
		if _, dup := c.defs[d.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate tile id %d", d.ID)
		}
		c.defs[d.ID] = d
	}
	return c, nil
}

// Lookup returns the definition for id. Id 0 and unknown ids report false.
func (c *Catalog) Lookup(id uint16) (TileDefinition, bool) {
	if c == nil || id == 0 {
		return TileDefinition{}, false
	}
	d, ok := c.defs[id]
	return d, ok
}

// FromPacked masks the variant off a packed cell and looks up its tile.
func (c *Catalog) FromPacked(packed uint32) (TileDefinition, bool) {
	return c.Lookup(UnpackCell(packed).ID)
}

// Len returns the number of defined tiles.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// All returns every definition ordered by id.
func (c *Catalog) All() []TileDefinition {
	out := make([]TileDefinition, 0, len(c.defs))
	for _, d := range c.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// tile resolves a cell; unknown ids come back as the zero definition,
// which has every flag false and therefore behaves as empty.
func (c *Catalog) tile(cell Cell) TileDefinition {
	d, _ := c.Lookup(cell.ID)
	return d
}

// shiftable reports whether a cell may travel with a rotation.
func (c *Catalog) shiftable(cell Cell) bool {
	d, ok := c.Lookup(cell.ID)
	return !ok || d.Shift
}
