package snake

import "snake-arcade/internal/core"

// maxFoodDraws bounds rejection sampling before falling back to a scan.
const maxFoodDraws = 64

// PlaceFood moves the food to a uniformly drawn free cell. After maxFoodDraws
// rejected draws it scans the board row by row and takes the first free cell.
// It returns false, leaving the food unchanged, when the snake covers the
// whole board.
func (s *Session) PlaceFood() bool {
	for i := 0; i < maxFoodDraws; i++ {
		c := core.Cell{X: s.rng.IntN(s.grid), Y: s.rng.IntN(s.grid)}
		if !s.occupied(c) {
			s.food = c
			return true
		}
	}
	c, ok := s.firstFree()
	if !ok {
		return false
	}
	s.food = c
	return true
}

func (s *Session) firstFree() (core.Cell, bool) {
	taken := make([]bool, s.grid*s.grid)
	for _, seg := range s.body {
		if seg.InSquare(s.grid) {
			taken[seg.Y*s.grid+seg.X] = true
		}
	}
	for i, t := range taken {
		if !t {
			return core.Cell{X: i % s.grid, Y: i / s.grid}, true
		}
	}
	return core.Cell{}, false
}
