package main

import (
	"fmt"
	"math/rand/v2"

	"snake-arcade/internal/core"
	"snake-arcade/internal/snake"
)

// pilot picks a heading each tick: usually the safe move that closes the
// distance to food, sometimes a random safe move.
type pilot struct {
	rng     *rand.Rand
	explore float64
}

func (p pilot) choose(s *snake.Session) core.Heading {
	body := s.Snake()
	head := body[0]
	food := s.Food()
	grid := s.GridSize()

	var safe []core.Heading
	for _, h := range core.Headings {
		if h == s.Heading().Opposite() {
			continue
		}
		next := head.Move(h)
		if !next.InSquare(grid) || blocked(body, next, next == food) {
			continue
		}
		safe = append(safe, h)
	}
	if len(safe) == 0 {
		return s.Heading()
	}
	if p.rng.Float64() < p.explore {
		return safe[p.rng.IntN(len(safe))]
	}
	best := safe[0]
	bestDist := distance(head.Move(best), food)
	for _, h := range safe[1:] {
		if d := distance(head.Move(h), food); d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}

// blocked reports whether moving into c collides with the body. The tail
// moves away unless the snake eats this tick.
func blocked(body []core.Cell, c core.Cell, eats bool) bool {
	end := len(body) - 1
	if eats {
		end = len(body)
	}
	for _, seg := range body[:end] {
		if seg == c {
			return true
		}
	}
	return false
}

func distance(a, b core.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// checkInvariants returns a description of the first broken engine rule, or
// "" when the session is consistent.
func checkInvariants(s *snake.Session, res snake.Result) string {
	if len(res.Snake) != 2+res.Score {
		return fmt.Sprintf("length %d with score %d", len(res.Snake), res.Score)
	}
	if res.Terminal {
		return ""
	}
	seen := make(map[core.Cell]bool, len(res.Snake))
	for _, c := range res.Snake {
		if !c.InSquare(s.GridSize()) {
			return fmt.Sprintf("segment %v off board", c)
		}
		if seen[c] {
			return fmt.Sprintf("segment %v repeated", c)
		}
		seen[c] = true
	}
	if seen[res.Food] {
		return fmt.Sprintf("food %v on snake", res.Food)
	}
	return ""
}
