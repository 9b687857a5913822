package snake

import "snake-arcade/internal/core"

// Result reports the outcome of one Step.
type Result struct {
	Terminal bool
	Cause    Cause
	Ate      bool
	Snake    []core.Cell
	Food     core.Cell
	Score    int
}

// Step advances the session by one tick.
//
// The head moves one cell along the pending heading and is prepended to the
// body. Eating keeps the tail (growth by one) and places new food; otherwise
// the tail is dropped. Collisions are then checked against the resulting
// body, so the cell the tail vacates this tick is only deadly when food was
// eaten. A finished session is left untouched.
func (s *Session) Step() Result {
	if !s.active {
		return s.result(false)
	}
	s.heading = s.pending
	s.ticks++

	head := s.body[0].Move(s.heading)
	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	ate := head == s.food
	boardFull := false
	if ate {
		s.score++
		boardFull = !s.PlaceFood()
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	switch {
	case !head.InSquare(s.grid):
		s.finish(CauseWall)
	case s.hitsBody(head):
		s.finish(CauseSelf)
	case boardFull:
		s.finish(CauseBoardFull)
	}
	return s.result(ate)
}

func (s *Session) hitsBody(head core.Cell) bool {
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

func (s *Session) finish(c Cause) {
	s.active = false
	s.cause = c
}

func (s *Session) result(ate bool) Result {
	return Result{
		Terminal: !s.active,
		Cause:    s.cause,
		Ate:      ate,
		Snake:    s.Snake(),
		Food:     s.food,
		Score:    s.score,
	}
}
