package engine

import "fmt"

// Coord encodes both the column (upper 32 bits) and the row (lower 32 bits)
// of one grid cell. Columns count from the left edge, rows from the bottom,
// so gravity pulls pieces toward row 0.
type Coord uint64

// NewCoord creates a Coord from a column and row index.
func NewCoord(x, y uint32) Coord {
	return Coord(uint64(x)<<32 | uint64(y))
}

// X extracts the column index from the coordinate.
func (c Coord) X() uint32 {
	return uint32(c >> 32)
}

// Y extracts the row index from the coordinate.
func (c Coord) Y() uint32 {
	return uint32(c & 0xFFFFFFFF)
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X(), c.Y())
}
