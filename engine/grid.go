package engine

import (
	"strings"

	"github.com/kamstrup/intmap"
)

// Grid is the playing field: a fixed width and height plus a sparse map from
// occupied cells to the piece resting in them. Empty cells are simply absent
// from the map.
//
// Every cell key is a packed Coord, so a lookup is a single integer probe.
//
// Gravity is an invariant, not a check: AddAtColumn only ever fills the
// lowest empty row of a column, so a piece never floats above a hole.
// Insert bypasses that for board setup; its callers own the invariant.
type Grid struct {
	width  uint32
	height uint32
	cells  *intmap.Map[Coord, PieceType]
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height uint32) *Grid {
	capHint := int(width) * int(height)
	if capHint < 16 {
		capHint = 16
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  intmap.New[Coord, PieceType](capHint),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return g.height }

// Get returns the piece at c. An in-bounds empty cell yields ErrNotOccupied;
// a coordinate outside the grid yields ErrOutOfRange.
func (g *Grid) Get(c Coord) (PieceType, error) {
	if c.X() >= g.width || c.Y() >= g.height {
		return 0, ErrOutOfRange
	}
	t, ok := g.cells.Get(c)
	if !ok {
		return 0, ErrNotOccupied
	}
	return t, nil
}

// Insert writes a piece at c unconditionally, overwriting any occupant and
// skipping bounds checks.
func (g *Grid) Insert(c Coord, t PieceType) {
	g.cells.Put(c, t)
}

// AddAtColumn drops a piece into column, where it falls to the lowest empty
// row, and returns the row it came to rest in. A column outside the grid
// yields ErrOutOfRange; a column with no empty row yields ErrColumnFull and
// leaves the grid untouched.
func (g *Grid) AddAtColumn(column uint32, t PieceType) (uint32, error) {
	if column >= g.width {
		return 0, ErrOutOfRange
	}
	for y := uint32(0); y < g.height; y++ {
		c := NewCoord(column, y)
		if _, ok := g.cells.Get(c); !ok {
			g.cells.Put(c, t)
			return y, nil
		}
	}
	return 0, ErrColumnFull
}

// IsFull reports whether every column is stacked to the top. Under the
// gravity invariant the top row alone decides it.
func (g *Grid) IsFull() bool {
	if g.height == 0 {
		return true
	}
	for x := uint32(0); x < g.width; x++ {
		if _, ok := g.cells.Get(NewCoord(x, g.height-1)); !ok {
			return false
		}
	}
	return true
}

// Matches runs match detection over the whole grid with DefaultDetector.
// Detection always recomputes from scratch; nothing is cached between calls.
func (g *Grid) Matches() Matches {
	return DefaultDetector().FindMatches(g)
}

// BoardString renders the grid one text line per row, top row first, with
// 'R' and 'B' for the two standard pieces, '.' for empty cells and '?' for
// anything else.
func BoardString(g *Grid) string {
	var b strings.Builder
	for y := int(g.height) - 1; y >= 0; y-- {
		for x := uint32(0); x < g.width; x++ {
			t, ok := g.cells.Get(NewCoord(x, uint32(y)))
			switch {
			case !ok:
				b.WriteByte('.')
			case t == Red:
				b.WriteByte('R')
			case t == Blue:
				b.WriteByte('B')
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
