package core

// Cell is the content of one layer at one position.
// Variant is a cosmetic tag chosen at load time and is never read by rules.
type Cell struct {
	ID      uint16
	Variant uint16
}

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool {
	return c.ID == 0
}

// PackCell encodes a cell as id in the low 16 bits and variant in the high 16 bits.
func PackCell(c Cell) uint32 {
	return uint32(c.Variant)<<16 | uint32(c.ID)
}

// UnpackCell reverses PackCell.
func UnpackCell(v uint32) Cell {
	return Cell{ID: uint16(v & 0xFFFF), Variant: uint16(v >> 16)}
}
