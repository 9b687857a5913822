package sound

import (
	"time"

	"github.com/gopxl/beep"

	"snake-arcade/internal/snake"
)

// Cue names a sound effect.
type Cue uint8

const (
	CueNone Cue = iota
	CueEat
	CueRecord
	CueGameOver
)

// Cues lists every playable cue.
var Cues = [...]Cue{CueEat, CueRecord, CueGameOver}

// Streamer returns a fresh streamer for c, or nil for CueNone.
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueEat:
		return Tone(rate, 880, 100*time.Millisecond, 3)
	case CueRecord:
		return Tone(rate, 1100, 150*time.Millisecond, 3)
	case CueGameOver:
		return Tone(rate, 220, 400*time.Millisecond, 3)
	default:
		return nil
	}
}

// CueFor picks the cue for a published frame.
func CueFor(f snake.Frame) Cue {
	switch {
	case f.Phase == snake.PhaseTerminal && f.NewRecord:
		return CueRecord
	case f.Phase == snake.PhaseTerminal:
		return CueGameOver
	case f.Phase == snake.PhaseActive && f.Ate:
		return CueEat
	default:
		return CueNone
	}
}
