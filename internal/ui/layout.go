package ui

import (
	"fmt"
	"image"
	"strconv"

	"snake-arcade/internal/core"
	"snake-arcade/internal/input"
	"snake-arcade/internal/snake"
)

// Source is what the HUD reads and adjusts. snake.Controller implements it.
type Source interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	Parameters() core.ParameterSnapshot
}

const (
	panelPadding   = 12
	lineHeight     = 36
	textLine       = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	padButton      = 40
	padGap         = 6
)

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// layoutControls stacks one row per control starting at top, with +/- buttons
// flush against the right edge of a width-wide panel.
func layoutControls(controls []core.ParameterControl, width, top int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, top: rowTop, minusRect: minus, plusRect: plus}
	}
	return states
}

// refresh pulls current control values out of snap.
func refresh(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		st := &states[i]
		p, ok := snap.Lookup(st.control.Key)
		if !ok || p.Type != core.ParamTypeInt {
			st.hasValue = false
			continue
		}
		v, err := strconv.Atoi(p.Value)
		if err != nil {
			st.hasValue = false
			continue
		}
		st.value = v
		st.hasValue = true
	}
}

// target returns the value a +/- press would set, and whether it changes
// anything.
func (st *controlState) target(direction int) (int, bool) {
	if !st.hasValue || direction == 0 {
		return st.value, false
	}
	step := st.control.Step
	if step <= 0 {
		step = 1
	}
	next := st.control.Clamp(st.value + direction*step)
	return next, next != st.value
}

// click applies a press at (x, y) in panel coordinates.
func click(states []controlState, setter core.IntParameterSetter, x, y int) bool {
	for i := range states {
		st := &states[i]
		dir := 0
		switch {
		case pointInRect(x, y, st.minusRect):
			dir = -1
		case pointInRect(x, y, st.plusRect):
			dir = 1
		default:
			continue
		}
		next, ok := st.target(dir)
		if !ok || !setter.SetIntParameter(st.control.Key, next) {
			return false
		}
		st.value = next
		return true
	}
	return false
}

// infoLines renders the read-only part of a snapshot as "Label: value" rows.
func infoLines(snap core.ParameterSnapshot, skip map[string]bool) []string {
	var lines []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if skip[p.Key] {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// padFor places the d-pad at the bottom of a width×height panel.
func padFor(width, height int) input.Pad {
	p := input.NewPad(image.Point{}, padButton, padGap)
	b := p.Bounds()
	p.Origin = image.Pt((width-b.Dx())/2, height-panelPadding-b.Dy())
	return p
}

// overlayLines returns the banner shown over the board for f.
func overlayLines(f snake.Frame) []string {
	switch f.Phase {
	case snake.PhaseIdle:
		return []string{"SNAKE", "", "Enter or tap to start", "Arrows / WASD / swipe to steer"}
	case snake.PhaseTerminal:
		title := "GAME OVER"
		if f.NewRecord {
			title = "NEW HIGH SCORE!"
		}
		return []string{
			title,
			"",
			fmt.Sprintf("Score %d   Best %d", f.Score, f.Best),
			"Enter or tap to play again",
		}
	default:
		return nil
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
