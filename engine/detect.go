package engine

import "strconv"

// DefaultRunLength is the run length that completes a match under classic
// rules.
const DefaultRunLength = 4

// GapPolicy decides what an empty cell does to the run being tracked during
// a line sweep.
type GapPolicy uint8

const (
	// GapIgnore makes empty cells invisible to run tracking: pieces separated
	// only by gaps still accumulate into one run, so R R . R R closes as a
	// run of four. This is the default policy.
	GapIgnore GapPolicy = iota
	// GapBreak closes the run at the first empty cell, so only contiguous
	// pieces match.
	GapBreak
)

func (p GapPolicy) String() string {
	switch p {
	case GapIgnore:
		return "ignore"
	case GapBreak:
		return "break"
	default:
		return "gaps(" + strconv.Itoa(int(p)) + ")"
	}
}

// Detector sweeps a grid for straight runs of same-typed pieces. The zero
// value matches every cell; use DefaultDetector or set both fields.
type Detector struct {
	// RunLength is the minimum number of same-typed cells that closes a run
	// as a match. Must be at least 1.
	RunLength int
	// Gap selects how empty cells interact with a run in progress.
	Gap GapPolicy
}

// DefaultDetector returns the classic detector: runs of four, gaps ignored.
func DefaultDetector() Detector {
	return Detector{RunLength: DefaultRunLength, Gap: GapIgnore}
}

// FindMatches scans every row left to right, then every column bottom to
// top, and collects each run of at least RunLength same-typed cells. Matches
// arrive row runs first, then column runs, each axis in ascending order. The
// two axes are independent: a cell inside both a row run and a column run
// appears in both matches.
func (d Detector) FindMatches(g *Grid) Matches {
	var found Matches
	for y := uint32(0); y < g.height; y++ {
		d.sweep(g, &found, g.width, func(i uint32) Coord { return NewCoord(i, y) })
	}
	for x := uint32(0); x < g.width; x++ {
		d.sweep(g, &found, g.height, func(i uint32) Coord { return NewCoord(x, i) })
	}
	return found
}

// sweep walks one line of n cells, tracking the current run and emitting it
// once it closes with at least RunLength cells. A run closes on a type
// change, at the end of the line, and, under GapBreak, on an empty cell.
func (d Detector) sweep(g *Grid, found *Matches, n uint32, at func(uint32) Coord) {
	var (
		run  []Coord
		prev PieceType
	)
	flush := func() {
		if len(run) > 0 && len(run) >= d.RunLength {
			found.Add(NewMatch(Straight, run...))
		}
		run = run[:0]
	}
	for i := uint32(0); i < n; i++ {
		c := at(i)
		t, ok := g.cells.Get(c)
		if !ok {
			if d.Gap == GapBreak {
				flush()
			}
			continue
		}
		if len(run) > 0 && t != prev {
			flush()
		}
		run = append(run, c)
		prev = t
	}
	flush()
}
