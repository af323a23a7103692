package engine

import "strconv"

// PieceType labels who owns a piece. It carries no behavior and is only
// compared for equality; the grid stores nothing at all for empty cells,
// so there is no "empty" variant.
type PieceType uint8

const (
	// Red is the piece dropped by the first player.
	Red PieceType = 0
	// Blue is the piece dropped by the second player.
	Blue PieceType = 1
)

// Opponent returns the other player's piece for the two standard tags.
func (t PieceType) Opponent() PieceType {
	if t == Red {
		return Blue
	}
	return Red
}

func (t PieceType) String() string {
	switch t {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "piece(" + strconv.Itoa(int(t)) + ")"
	}
}
