// Package core provides the rule engine for Rubik's Dungeon.
// It is UI-agnostic, single-threaded and deterministic for a given RNG seed.
package core

import "fmt"

// Layer identifies one of the stacked grids that make up a cell.
type Layer uint8

const (
	LayerFloor  Layer = iota // Always-passable underlay
	LayerObject              // Boxes, walls, traps, goals
	LayerSky                 // Decoration, rule-inert for collision

	LayerCount // always last
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerFloor:
		return "floor"
	case LayerObject:
		return "object"
	case LayerSky:
		return "sky"
	default:
		return "unknown"
	}
}

// Axis selects whether a shift rotates a row or a column.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisCol {
		return "col"
	}
	return "row"
}

// Coord is a grid position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// isUnitStep reports whether (dx, dy) is one orthogonal step.
func isUnitStep(dx, dy int) bool {
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

// wrap maps any index onto [0, n).
func wrap(i, n int) int {
	return (i%n + n) % n
}
