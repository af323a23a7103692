package engine

import "errors"

var (
	// ErrNotOccupied reports a lookup on an empty cell. Placement and
	// rendering code uses it as the ordinary "is this cell filled?" signal.
	ErrNotOccupied = errors.New("cell not occupied")

	// ErrColumnFull reports a placement into a column with no empty row left.
	// The grid is unchanged when it is returned.
	ErrColumnFull = errors.New("column full")

	// ErrOutOfRange reports a column or coordinate outside the grid bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrGameOver reports a move applied to a finished session.
	ErrGameOver = errors.New("game over")

	// ErrInvalidRules reports a rule set that cannot produce a playable game.
	ErrInvalidRules = errors.New("invalid rules")
)
