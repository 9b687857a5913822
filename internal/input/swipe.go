package input

import "snake-arcade/internal/core"

// DefaultSensitivity is the minimum travel, in pixels, along the dominant
// axis before a drag counts as a swipe.
const DefaultSensitivity = 30

// Swipe infers headings from a pointer or touch drag. After each accepted
// sample the anchor moves to that point, so one long drag can produce
// several turns.
type Swipe struct {
	Sensitivity float64

	active bool
	x, y   float64
}

// NewSwipe returns a tracker with DefaultSensitivity.
func NewSwipe() *Swipe {
	return &Swipe{Sensitivity: DefaultSensitivity}
}

// Begin anchors a new gesture at (x, y).
func (s *Swipe) Begin(x, y float64) {
	s.active = true
	s.x, s.y = x, y
}

// End abandons the current gesture.
func (s *Swipe) End() { s.active = false }

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool { return s.active }

// Move feeds the next sample and returns a heading once the drag is long
// enough along one axis. Ties between the axes yield nothing.
func (s *Swipe) Move(x, y float64) (core.Heading, bool) {
	if !s.active {
		return 0, false
	}
	dx := x - s.x
	dy := y - s.y
	ax, ay := abs(dx), abs(dy)
	var h core.Heading
	switch {
	case ax > ay && ax > s.Sensitivity:
		h = core.HeadingRight
		if dx < 0 {
			h = core.HeadingLeft
		}
	case ay > ax && ay > s.Sensitivity:
		h = core.HeadingDown
		if dy < 0 {
			h = core.HeadingUp
		}
	}
	s.x, s.y = x, y
	return h, h.Valid()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
