package core

import "math/rand"

// DefaultVariantRange bounds the cosmetic variant tag assigned at load: [0, 100).
const DefaultVariantRange = 100

// RawLayers holds the tile ids of each layer in row-major order (index = y*W + x).
type RawLayers [LayerCount][]uint16

// GridSpec describes a grid to build.
type GridSpec struct {
	W, H         int
	Layers       RawLayers
	Start        Coord
	VariantRange int // <= 0 means DefaultVariantRange
}

// Grid is the layered board plus the player position.
// Cells live in one flat arena indexed x + y*W + layer*W*H.
type Grid struct {
	w, h   int
	cells  []Cell
	player Coord
}

// NewGrid validates spec and builds a grid, tagging every non-empty cell
// with a variant drawn from rng. A nil rng leaves all variants at 0.
func NewGrid(spec GridSpec, catalog *Catalog, rng *rand.Rand) (*Grid, error) {
	if spec.W <= 0 || spec.H <= 0 {
		return nil, loadErrorf(CodeBadDimensions, "grid must be at least 1x1, got %dx%d", spec.W, spec.H)
	}
	area := spec.W * spec.H
	for l := Layer(0); l < LayerCount; l++ {
		if len(spec.Layers[l]) != area {
			return nil, loadErrorf(CodeLayerSize, "%s layer has %d cells, want %d", l, len(spec.Layers[l]), area)
		}
	}

	variants := spec.VariantRange
	if variants <= 0 {
		variants = DefaultVariantRange
	}

	g := &Grid{
		w:     spec.W,
		h:     spec.H,
		cells: make([]Cell, area*int(LayerCount)),
	}
	for l := Layer(0); l < LayerCount; l++ {
		for i, id := range spec.Layers[l] {
			if id == 0 {
				continue
			}
			cell := Cell{ID: id}
			if rng != nil {
				cell.Variant = uint16(rng.Intn(variants))
			}
			g.cells[i+int(l)*area] = cell
		}
	}

	if !g.InBounds(spec.Start) {
		return nil, loadErrorf(CodeNoStart, "start %v outside %dx%d grid", spec.Start, spec.W, spec.H)
	}
	if catalog.tile(g.CellAt(spec.Start.X, spec.Start.Y, LayerObject)).Stop {
		return nil, loadErrorf(CodeStartBlocked, "start %v is inside a blocking tile", spec.Start)
	}
	g.player = spec.Start
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Player returns the player's cell.
func (g *Grid) Player() Coord { return g.player }

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) index(x, y int, l Layer) int {
	return x + y*g.w + int(l)*g.w*g.h
}

// CellAt returns the cell at (x, y, l). Out-of-bounds reads return an empty cell.
func (g *Grid) CellAt(x, y int, l Layer) Cell {
	if x < 0 || x >= g.w || y < 0 || y >= g.h || l >= LayerCount {
		return Cell{}
	}
	return g.cells[g.index(x, y, l)]
}

// LayerID returns the tile id at (x, y, l), or 0 when out of bounds.
func (g *Grid) LayerID(x, y int, l Layer) uint16 {
	return g.CellAt(x, y, l).ID
}

// LayerVariant returns the variant tag at (x, y, l), or 0 when out of bounds.
func (g *Grid) LayerVariant(x, y int, l Layer) uint16 {
	return g.CellAt(x, y, l).Variant
}

func (g *Grid) set(c Coord, l Layer, cell Cell) {
	g.cells[g.index(c.X, c.Y, l)] = cell
}

func (g *Grid) at(c Coord, l Layer) Cell {
	return g.cells[g.index(c.X, c.Y, l)]
}

// lineLen returns the number of cells along a row or column.
func (g *Grid) lineLen(axis Axis) int {
	if axis == AxisRow {
		return g.w
	}
	return g.h
}

// linePos converts a position along a line into a grid coordinate.
func (g *Grid) linePos(axis Axis, line, i int) Coord {
	if axis == AxisRow {
		return C(i, line)
	}
	return C(line, i)
}

// Snapshot is a deep copy of every layer.
type Snapshot struct {
	W, H  int
	Cells []Cell
}

// Equal reports whether two snapshots hold identical cells.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.W != other.W || s.H != other.H || len(s.Cells) != len(other.Cells) {
		return false
	}
	for i, c := range s.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Snapshot returns a deep copy of the layers.
func (g *Grid) Snapshot() Snapshot {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Snapshot{W: g.w, H: g.h, Cells: cells}
}

// Restore replaces the layers and player position.
// The snapshot is copied, so later edits to it do not leak into the grid.
func (g *Grid) Restore(s Snapshot, player Coord) error {
	if s.W != g.w || s.H != g.h || len(s.Cells) != len(g.cells) {
		return loadErrorf(CodeBadSnapshot, "snapshot is %dx%d, grid is %dx%d", s.W, s.H, g.w, g.h)
	}
	if !g.InBounds(player) {
		return loadErrorf(CodeBadSnapshot, "player %v outside grid", player)
	}
	g.restore(s, player)
	return nil
}

// restore copies a snapshot taken from this grid back in place.
func (g *Grid) restore(s Snapshot, player Coord) {
	copy(g.cells, s.Cells)
	g.player = player
}

// Count returns how many cells on layer l hold tile id.
func (g *Grid) Count(l Layer, id uint16) int {
	n := 0
	area := g.w * g.h
	for _, c := range g.cells[int(l)*area : int(l+1)*area] {
		if c.ID == id {
			n++
		}
	}
	return n
}
