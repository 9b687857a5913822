package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Renderers read it as a display buffer; values are palette indices.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether c lies on the grid.
func (g *ByteGrid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Set writes v at c. Off-grid cells are ignored.
func (g *ByteGrid) Set(c Cell, v uint8) {
	if !g.Contains(c) {
		return
	}
	g.data[g.Index(c.X, c.Y)] = v
}

// At returns the value stored at c, or 0 when c is off the grid.
func (g *ByteGrid) At(c Cell) uint8 {
	if !g.Contains(c) {
		return 0
	}
	return g.data[g.Index(c.X, c.Y)]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
