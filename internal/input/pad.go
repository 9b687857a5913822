package input

import (
	"image"

	"snake-arcade/internal/core"
)

// Pad lays out four directional buttons in a plus shape:
//
//	   ^
//	<  v  >
type Pad struct {
	Origin image.Point
	Button int
	Gap    int
}

// NewPad returns a pad anchored at origin with square buttons of the given
// size.
func NewPad(origin image.Point, button, gap int) Pad {
	return Pad{Origin: origin, Button: button, Gap: gap}
}

// Bounds returns the rectangle covering every button.
func (p Pad) Bounds() image.Rectangle {
	w := 3*p.Button + 2*p.Gap
	h := 2*p.Button + p.Gap
	return image.Rect(p.Origin.X, p.Origin.Y, p.Origin.X+w, p.Origin.Y+h)
}

// Rect returns the button rectangle for h.
func (p Pad) Rect(h core.Heading) image.Rectangle {
	col, row := 0, 1
	switch h {
	case core.HeadingUp:
		col, row = 1, 0
	case core.HeadingDown:
		col = 1
	case core.HeadingLeft:
		col = 0
	case core.HeadingRight:
		col = 2
	default:
		return image.Rectangle{}
	}
	x := p.Origin.X + col*(p.Button+p.Gap)
	y := p.Origin.Y + row*(p.Button+p.Gap)
	return image.Rect(x, y, x+p.Button, y+p.Button)
}

// Hit returns the heading of the button containing (x, y).
func (p Pad) Hit(x, y int) (core.Heading, bool) {
	pt := image.Pt(x, y)
	for _, h := range core.Headings {
		if pt.In(p.Rect(h)) {
			return h, true
		}
	}
	return 0, false
}

// Label returns the glyph drawn on the button for h.
func Label(h core.Heading) string {
	switch h {
	case core.HeadingUp:
		return "^"
	case core.HeadingDown:
		return "v"
	case core.HeadingLeft:
		return "<"
	case core.HeadingRight:
		return ">"
	default:
		return ""
	}
}
