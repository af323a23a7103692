package engine

import "strconv"

// Status is the lifecycle phase of a session.
type Status uint8

const (
	// StatusInProgress means the session accepts moves.
	StatusInProgress Status = iota
	// StatusWon means a move completed at least one run; Winner holds it.
	StatusWon
	// StatusDrawn means the grid filled up with no run completed.
	StatusDrawn
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}

// MoveOutcome reports everything one applied move changed: who moved, where
// the piece landed, the matches it completed and the session status after
// the move.
type MoveOutcome struct {
	Piece   PieceType
	Cell    Coord
	Row     uint32
	Column  uint32
	Matches Matches
	Status  Status
}

// Session is one independent game: a grid, a detector and the turn state,
// all advanced through ApplyMove. Sessions hold no shared state, so any
// number of them coexist; a single session is not safe for concurrent use.
type Session struct {
	rules    Rules
	grid     *Grid
	detector Detector
	active   PieceType
	status   Status
	winner   PieceType
	moves    int
	lastCol  uint32
	hasMoved bool
}

// NewSession validates the rules and starts a game with Red to move.
func NewSession(r Rules) (*Session, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	s := &Session{rules: r}
	s.Reset()
	return s, nil
}

// Reset clears the board and restarts the game with Red to move, keeping
// the rules.
func (s *Session) Reset() {
	s.grid = NewGrid(s.rules.Cols, s.rules.Rows)
	s.detector = s.rules.Detector()
	s.active = Red
	s.status = StatusInProgress
	s.winner = Red
	s.moves = 0
	s.lastCol = 0
	s.hasMoved = false
}

// ApplyMove drops the active piece into column and resolves the turn:
// matches are re-detected over the whole grid, the status updates, and the
// turn passes to the opponent when the game continues. A finished session
// returns ErrGameOver; ErrOutOfRange and ErrColumnFull pass through from the
// grid with the session untouched.
func (s *Session) ApplyMove(column uint32) (MoveOutcome, error) {
	if s.status != StatusInProgress {
		return MoveOutcome{}, ErrGameOver
	}
	row, err := s.grid.AddAtColumn(column, s.active)
	if err != nil {
		return MoveOutcome{}, err
	}
	out := MoveOutcome{
		Piece:  s.active,
		Cell:   NewCoord(column, row),
		Row:    row,
		Column: column,
	}
	s.moves++
	s.lastCol = column
	s.hasMoved = true

	out.Matches = s.detector.FindMatches(s.grid)
	switch {
	case !out.Matches.IsEmpty():
		s.status = StatusWon
		s.winner = s.active
	case s.grid.IsFull():
		s.status = StatusDrawn
	default:
		s.active = s.active.Opponent()
	}
	out.Status = s.status
	return out, nil
}

// Grid returns the live grid. Treat it as read-only; mutating it outside
// ApplyMove breaks the session's bookkeeping.
func (s *Session) Grid() *Grid { return s.grid }

// Rules returns the rules the session was built with.
func (s *Session) Rules() Rules { return s.rules }

// Active returns the piece that moves next. Once the game is won it stays
// on the piece that won.
func (s *Session) Active() PieceType { return s.active }

// Status returns the lifecycle phase.
func (s *Session) Status() Status { return s.status }

// Winner returns the winning piece, if the game has been won.
func (s *Session) Winner() (PieceType, bool) {
	return s.winner, s.status == StatusWon
}

// Moves returns how many moves have been applied since the last reset.
func (s *Session) Moves() int { return s.moves }

// LastColumn returns the most recently played column, if a move has been
// applied since the last reset.
func (s *Session) LastColumn() (uint32, bool) {
	return s.lastCol, s.hasMoved
}

// Render returns the ASCII board, top row first.
func (s *Session) Render() string {
	return BoardString(s.grid)
}
