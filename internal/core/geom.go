package core

import "fmt"

// Cell is an integer board coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X int
	Y int
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move returns the neighbouring cell one step along h.
func (c Cell) Move(h Heading) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// InSquare reports whether c lies on a size×size board.
func (c Cell) InSquare(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Heading is one of the four unit directions the snake can travel.
type Heading uint8

const (
	HeadingUp Heading = iota + 1
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Headings lists every valid heading.
var Headings = [...]Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// Valid reports whether h is one of the four headings.
func (h Heading) Valid() bool {
	return h >= HeadingUp && h <= HeadingRight
}

// Delta returns the (dx, dy) unit vector for h.
// Up decreases Y, Down increases Y (screen coordinates).
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading on the same axis.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	default:
		return h
	}
}

// String returns the lowercase heading name.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "none"
	}
}
