package term

import (
	"github.com/gdamore/tcell/v2"

	"snake-arcade/internal/core"
	"snake-arcade/internal/input"
)

// Action is what a key press asks the loop to do.
type Action uint8

const (
	ActionNone Action = iota
	ActionSteer
	ActionStart
	ActionMute
	ActionQuit
)

var keymap = input.DefaultKeymap()

// Decode maps a terminal key to an action. Steering keys also return the
// heading.
func Decode(key tcell.Key, r rune) (Action, core.Heading) {
	switch key {
	case tcell.KeyUp:
		return ActionSteer, core.HeadingUp
	case tcell.KeyDown:
		return ActionSteer, core.HeadingDown
	case tcell.KeyLeft:
		return ActionSteer, core.HeadingLeft
	case tcell.KeyRight:
		return ActionSteer, core.HeadingRight
	case tcell.KeyEnter:
		return ActionStart, 0
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
	default:
		return ActionNone, 0
	}

	switch r {
	case ' ':
		return ActionStart, 0
	case 'q', 'Q':
		return ActionQuit, 0
	case 'm', 'M':
		return ActionMute, 0
	}
	if h, ok := keymap.Rune(r); ok {
		return ActionSteer, h
	}
	return ActionNone, 0
}
