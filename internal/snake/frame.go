package snake

import "snake-arcade/internal/core"

// Display codes written by Frame.Paint. Renderers use them as palette indices.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

// Phase is the controller's position in the Idle → Active → Terminal cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseTerminal
)

// String returns a short label for p.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "playing"
	case PhaseTerminal:
		return "game over"
	default:
		return "idle"
	}
}

// Frame is a read-only snapshot of the controller for renderers.
type Frame struct {
	Phase     Phase
	Grid      int
	Snake     []core.Cell
	Food      core.Cell
	Score     int
	Best      int
	NewRecord bool
	Cause     Cause
	Ate       bool
	Tick      uint64
	RunID     string
}

// Head returns the head cell when a snake is present.
func (f Frame) Head() (core.Cell, bool) {
	if len(f.Snake) == 0 {
		return core.Cell{}, false
	}
	return f.Snake[0], true
}

// Paint clears g and writes the frame's display codes into it. Cells outside
// the board, such as a head that crashed into the wall, are skipped.
func (f Frame) Paint(g *core.ByteGrid) {
	g.Clear()
	if f.Phase == PhaseIdle {
		return
	}
	g.Set(f.Food, CellFood)
	for i := len(f.Snake) - 1; i >= 1; i-- {
		g.Set(f.Snake[i], CellBody)
	}
	if head, ok := f.Head(); ok {
		g.Set(head, CellHead)
	}
}
