package engine

import "fmt"

// Rules bundles every knob a session needs: the board dimensions, the run
// length that wins, and the gap policy used during detection.
type Rules struct {
	Cols uint32
	Rows uint32
	Run  int
	Gap  GapPolicy
}

// Classic returns the standard game: a seven-by-six board, runs of four,
// gaps ignored.
func Classic() Rules {
	return Rules{Cols: 7, Rows: 6, Run: DefaultRunLength, Gap: GapIgnore}
}

// Detector returns the detector these rules describe.
func (r Rules) Detector() Detector {
	return Detector{RunLength: r.Run, Gap: r.Gap}
}

// Validate reports whether the rules describe a playable game. All errors
// wrap ErrInvalidRules.
func (r Rules) Validate() error {
	switch {
	case r.Cols == 0 || r.Rows == 0:
		return fmt.Errorf("%w: board %dx%d has no cells", ErrInvalidRules, r.Cols, r.Rows)
	case r.Run < 2:
		return fmt.Errorf("%w: run length %d, need at least 2", ErrInvalidRules, r.Run)
	case uint32(r.Run) > r.Cols && uint32(r.Run) > r.Rows:
		return fmt.Errorf("%w: run length %d fits neither %d columns nor %d rows",
			ErrInvalidRules, r.Run, r.Cols, r.Rows)
	case r.Gap != GapIgnore && r.Gap != GapBreak:
		return fmt.Errorf("%w: unknown gap policy %d", ErrInvalidRules, uint8(r.Gap))
	}
	return nil
}
