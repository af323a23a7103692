package engine_test

import (
	"testing"

	"github.com/plus3/fourline/engine"
	"github.com/stretchr/testify/assert"
)

func TestOpponent(t *testing.T) {
	assert.Equal(t, engine.Blue, engine.Red.Opponent())
	assert.Equal(t, engine.Red, engine.Blue.Opponent())
}

func TestPieceTypeString(t *testing.T) {
	assert.Equal(t, "red", engine.Red.String())
	assert.Equal(t, "blue", engine.Blue.String())
	assert.Equal(t, "piece(7)", engine.PieceType(7).String())
}
