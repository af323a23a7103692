package engine_test

import (
	"testing"

	"github.com/plus3/fourline/engine"
)

// newTestGrid builds a grid from one string per row, top row first, using
// 'R', 'B' and '.' the way BoardString prints them. Layouts may float,
// which keeps detection fixtures compact.
func newTestGrid(t *testing.T, rows ...string) *engine.Grid {
	t.Helper()
	height := uint32(len(rows))
	width := uint32(0)
	if height > 0 {
		width = uint32(len(rows[0]))
	}
	g := engine.NewGrid(width, height)
	for i, row := range rows {
		if uint32(len(row)) != width {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), width)
		}
		y := height - 1 - uint32(i)
		for x, cell := range row {
			switch cell {
			case 'R':
				g.Insert(engine.NewCoord(uint32(x), y), engine.Red)
			case 'B':
				g.Insert(engine.NewCoord(uint32(x), y), engine.Blue)
			case '.':
			default:
				t.Fatalf("row %d: unknown cell %q", i, cell)
			}
		}
	}
	return g
}

// coords packs x,y pairs into a coordinate slice.
func coords(pairs ...uint32) []engine.Coord {
	if len(pairs)%2 != 0 {
		panic("coords: odd pair count")
	}
	out := make([]engine.Coord, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, engine.NewCoord(pairs[i], pairs[i+1]))
	}
	return out
}

// cellsOf flattens a match collection into each match's cells, in order.
func cellsOf(ms engine.Matches) [][]engine.Coord {
	var out [][]engine.Coord
	for m := range ms.All() {
		out = append(out, m.Cells())
	}
	return out
}

// playMoves applies each column in order, failing the test on any error.
func playMoves(t *testing.T, s *engine.Session, cols ...uint32) {
	t.Helper()
	for i, col := range cols {
		if _, err := s.ApplyMove(col); err != nil {
			t.Fatalf("move %d (column %d): %v", i, col, err)
		}
	}
}
