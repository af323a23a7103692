package engine

import (
	"iter"
	"slices"
	"strconv"

	"github.com/kamstrup/intmap"
)

// MatchKind tags the shape of a detected run.
type MatchKind uint8

// Straight is a run along a single row or column.
const Straight MatchKind = 0

func (k MatchKind) String() string {
	if k == Straight {
		return "straight"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Match is one detected run of same-typed pieces: its kind plus the cells it
// covers, in sweep order. A Match is immutable once built.
type Match struct {
	kind  MatchKind
	cells []Coord
}

// NewMatch builds a match over the given cells. The slice is copied.
func NewMatch(kind MatchKind, cells ...Coord) Match {
	return Match{kind: kind, cells: slices.Clone(cells)}
}

// Kind returns the run's shape tag.
func (m Match) Kind() MatchKind { return m.kind }

// Len returns the number of cells the run covers.
func (m Match) Len() int { return len(m.cells) }

// Contains reports whether the run covers c.
func (m Match) Contains(c Coord) bool {
	return slices.Contains(m.cells, c)
}

// Cells returns a copy of the run's coordinates in sweep order.
func (m Match) Cells() []Coord {
	return slices.Clone(m.cells)
}

// Matches is an ordered collection of detected runs. The zero value is an
// empty collection ready for Add.
type Matches struct {
	list []Match
}

// Add appends one match to the end of the collection.
func (ms *Matches) Add(m Match) {
	ms.list = append(ms.list, m)
}

// Append appends every match of other to the end of the collection,
// preserving both insertion orders.
func (ms *Matches) Append(other Matches) {
	ms.list = append(ms.list, other.list...)
}

// IsEmpty reports whether no match has been recorded.
func (ms Matches) IsEmpty() bool { return len(ms.list) == 0 }

// Len returns the number of recorded matches.
func (ms Matches) Len() int { return len(ms.list) }

// All iterates the matches in insertion order.
func (ms Matches) All() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for _, m := range ms.list {
			if !yield(m) {
				return
			}
		}
	}
}

// WithoutDuplicates flattens the matches into the coordinates they cover,
// in first-appearance order. A cell shared between overlapping runs appears
// once.
func (ms Matches) WithoutDuplicates() []Coord {
	total := 0
	for _, m := range ms.list {
		total += len(m.cells)
	}
	if total == 0 {
		return nil
	}
	seen := intmap.New[Coord, struct{}](total)
	out := make([]Coord, 0, total)
	for _, m := range ms.list {
		for _, c := range m.cells {
			if _, dup := seen.Get(c); dup {
				continue
			}
			seen.Put(c, struct{}{})
			out = append(out, c)
		}
	}
	return out
}
