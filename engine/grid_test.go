package engine_test

import (
	"testing"

	"github.com/plus3/fourline/engine"
	"github.com/stretchr/testify/assert"
)

// Test gravity placement
func TestAddAtColumnStacks(t *testing.T) {
	g := engine.NewGrid(7, 6)

	row, err := g.AddAtColumn(3, engine.Red)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), row)

	row, err = g.AddAtColumn(3, engine.Blue)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), row)

	row, err = g.AddAtColumn(3, engine.Red)
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), row)

	// Other columns still start at the bottom.
	row, err = g.AddAtColumn(4, engine.Blue)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), row)
}

func TestAddAtColumnNeverFloats(t *testing.T) {
	g := engine.NewGrid(3, 4)
	for i := 0; i < 4; i++ {
		row, err := g.AddAtColumn(1, engine.Red)
		assert.NoError(t, err)
		assert.Equal(t, uint32(i), row)
		// Every cell at or below the new piece is occupied.
		for y := uint32(0); y <= row; y++ {
			_, err := g.Get(engine.NewCoord(1, y))
			assert.NoError(t, err)
		}
	}
}

func TestAddAtColumnFull(t *testing.T) {
	g := engine.NewGrid(2, 3)
	fills := []engine.PieceType{engine.Red, engine.Blue, engine.Red}
	for _, p := range fills {
		_, err := g.AddAtColumn(0, p)
		assert.NoError(t, err)
	}

	_, err := g.AddAtColumn(0, engine.Blue)
	assert.ErrorIs(t, err, engine.ErrColumnFull)

	// The rejected piece must not disturb the column.
	for y, want := range fills {
		got, err := g.Get(engine.NewCoord(0, uint32(y)))
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	// The neighbouring column still accepts pieces.
	row, err := g.AddAtColumn(1, engine.Blue)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), row)
}

func TestAddAtColumnOutOfRange(t *testing.T) {
	g := engine.NewGrid(7, 6)

	_, err := g.AddAtColumn(7, engine.Red)
	assert.ErrorIs(t, err, engine.ErrOutOfRange)

	_, err = g.AddAtColumn(1000, engine.Red)
	assert.ErrorIs(t, err, engine.ErrOutOfRange)
}

// Test cell lookup
func TestGet(t *testing.T) {
	g := engine.NewGrid(7, 6)
	g.Insert(engine.NewCoord(2, 0), engine.Blue)

	got, err := g.Get(engine.NewCoord(2, 0))
	assert.NoError(t, err)
	assert.Equal(t, engine.Blue, got)

	_, err = g.Get(engine.NewCoord(2, 1))
	assert.ErrorIs(t, err, engine.ErrNotOccupied)

	_, err = g.Get(engine.NewCoord(7, 0))
	assert.ErrorIs(t, err, engine.ErrOutOfRange)

	_, err = g.Get(engine.NewCoord(0, 6))
	assert.ErrorIs(t, err, engine.ErrOutOfRange)
}

func TestInsertOverwrites(t *testing.T) {
	g := engine.NewGrid(3, 3)
	c := engine.NewCoord(1, 1)

	g.Insert(c, engine.Red)
	g.Insert(c, engine.Blue)

	got, err := g.Get(c)
	assert.NoError(t, err)
	assert.Equal(t, engine.Blue, got)
}

func TestIsFull(t *testing.T) {
	g := engine.NewGrid(2, 2)
	assert.False(t, g.IsFull())

	g.AddAtColumn(0, engine.Red)
	g.AddAtColumn(1, engine.Blue)
	assert.False(t, g.IsFull())

	g.AddAtColumn(0, engine.Blue)
	assert.False(t, g.IsFull())

	g.AddAtColumn(1, engine.Red)
	assert.True(t, g.IsFull())
}

func TestDimensions(t *testing.T) {
	g := engine.NewGrid(9, 7)
	assert.Equal(t, uint32(9), g.Width())
	assert.Equal(t, uint32(7), g.Height())
}

func TestGridMatches(t *testing.T) {
	g := engine.NewGrid(7, 6)
	for i := 0; i < 4; i++ {
		g.AddAtColumn(5, engine.Red)
	}

	ms := g.Matches()
	assert.Equal(t, 1, ms.Len())
	for m := range ms.All() {
		assert.Equal(t, coords(5, 0, 5, 1, 5, 2, 5, 3), m.Cells())
	}
}

func TestBoardString(t *testing.T) {
	g := newTestGrid(t,
		"....",
		".B..",
		"RB.R",
	)
	assert.Equal(t, "....\n.B..\nRB.R\n", engine.BoardString(g))
}
