package snake

import (
	"errors"
	"math/rand/v2"

	"snake-arcade/internal/core"
)

// MinGridSize is the smallest board that fits the starting snake plus a food
// cell with room to turn.
const MinGridSize = 4

// ErrGridTooSmall is returned when a session is requested on a board smaller
// than MinGridSize.
var ErrGridTooSmall = errors.New("snake: grid too small")

// Cause explains why a session ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

// String returns a short label for c.
func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// Session holds the state of one game: board, snake, food, heading and score.
// A Session is not safe for concurrent use; Controller serialises access.
type Session struct {
	grid    int
	body    []core.Cell
	food    core.Cell
	heading core.Heading
	pending core.Heading
	score   int
	active  bool
	cause   Cause
	ticks   uint64
	rng     *rand.Rand
}

// NewSession creates an active session on a gridSize×gridSize board with a
// two-segment snake centred on the board and heading right.
func NewSession(gridSize int, rng *rand.Rand) (*Session, error) {
	if gridSize < MinGridSize {
		return nil, ErrGridTooSmall
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), 0))
	}
	mid := gridSize / 2
	s := &Session{
		grid:    gridSize,
		body:    []core.Cell{{X: mid, Y: mid}, {X: mid - 1, Y: mid}},
		heading: core.HeadingRight,
		pending: core.HeadingRight,
		active:  true,
		rng:     rng,
	}
	s.PlaceFood()
	return s, nil
}

// SetHeading queues h for the next tick. Reversing onto the neck and calls on
// a finished session are ignored. The last accepted call before a tick wins.
func (s *Session) SetHeading(h core.Heading) {
	if !s.active || !h.Valid() {
		return
	}
	if h == s.heading.Opposite() {
		return
	}
	s.pending = h
}

// GridSize returns the board edge length.
func (s *Session) GridSize() int { return s.grid }

// Snake returns a copy of the body, head first.
func (s *Session) Snake() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head cell.
func (s *Session) Head() core.Cell { return s.body[0] }

// Len returns the number of segments.
func (s *Session) Len() int { return len(s.body) }

// Food returns the current food cell.
func (s *Session) Food() core.Cell { return s.food }

// Heading returns the heading applied on the last tick.
func (s *Session) Heading() core.Heading { return s.heading }

// Pending returns the heading the next tick will use.
func (s *Session) Pending() core.Heading { return s.pending }

// Score returns the number of food cells eaten.
func (s *Session) Score() int { return s.score }

// Active reports whether the session can still advance.
func (s *Session) Active() bool { return s.active }

// Cause returns why the session ended, or CauseNone while active.
func (s *Session) Cause() Cause { return s.cause }

// Ticks returns the number of steps taken.
func (s *Session) Ticks() uint64 { return s.ticks }

// occupied reports whether c is covered by any snake segment.
func (s *Session) occupied(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// EndSession folds a finished session's score into the stored best. It
// returns the new best and whether the session set a record. No I/O.
func EndSession(s *Session, highScore int) (best int, record bool) {
	if s.score > highScore {
		return s.score, true
	}
	return highScore, false
}
