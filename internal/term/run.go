// Package term runs the game in a terminal through tcell.
package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/internal/render"
	"snake-arcade/internal/snake"
)

// Screen is the subset of tcell.Screen the loop needs.
type Screen interface {
	render.Screen
	PollEvent() tcell.Event
}

// Muter toggles sound output.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

// Options tunes Run. The zero value is usable.
type Options struct {
	Sound  Muter
	Logger *log.Logger
}

// Run draws ctrl on s and feeds it keys and ticks until the user quits, the
// screen stops delivering events, or ctx is cancelled.
func Run(ctx context.Context, s Screen, ctrl *snake.Controller, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	view := render.NewTerminal(ctrl.Grid(), render.DefaultPalette)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	interval := ctrl.Interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	draw := func() {
		note := ""
		if opts.Sound != nil && opts.Sound.Muted() {
			note = "(muted)"
		}
		view.Draw(s, ctrl.Frame(), note)
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				act, h := Decode(ev.Key(), ev.Rune())
				switch act {
				case ActionQuit:
					return nil
				case ActionSteer:
					ctrl.Steer(h)
				case ActionStart:
					if ctrl.Phase() != snake.PhaseActive {
						if err := ctrl.Start(); err != nil {
							logger.Printf("snake: start: %v", err)
						}
						ticker.Reset(interval)
					}
				case ActionMute:
					if opts.Sound != nil {
						opts.Sound.SetMuted(!opts.Sound.Muted())
					}
				}
				draw()
			case *tcell.EventResize:
				draw()
			}

		case <-ticker.C:
			if next := ctrl.Interval(); next != interval {
				interval = next
				ticker.Reset(interval)
			}
			if ctrl.Phase() == snake.PhaseActive {
				ctrl.Tick()
			}
			draw()
		}
	}
}
