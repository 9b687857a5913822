package term

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/internal/core"
	"snake-arcade/internal/snake"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		key     tcell.Key
		r       rune
		act     Action
		heading core.Heading
	}{
		{tcell.KeyUp, 0, ActionSteer, core.HeadingUp},
		{tcell.KeyLeft, 0, ActionSteer, core.HeadingLeft},
		{tcell.KeyRune, 'd', ActionSteer, core.HeadingRight},
		{tcell.KeyRune, 'S', ActionSteer, core.HeadingDown},
		{tcell.KeyEnter, 0, ActionStart, 0},
		{tcell.KeyRune, ' ', ActionStart, 0},
		{tcell.KeyEscape, 0, ActionQuit, 0},
		{tcell.KeyRune, 'q', ActionQuit, 0},
		{tcell.KeyRune, 'm', ActionMute, 0},
		{tcell.KeyRune, 'x', ActionNone, 0},
		{tcell.KeyTab, 0, ActionNone, 0},
	}
	for _, tc := range cases {
		act, h := Decode(tc.key, tc.r)
		if act != tc.act || h != tc.heading {
			t.Errorf("Decode(%v, %q) = %v,%v want %v,%v", tc.key, tc.r, act, h, tc.act, tc.heading)
		}
	}
}

type fakeScreen struct {
	mu     sync.Mutex
	events chan tcell.Event
	shows  int
	polls  int
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{events: make(chan tcell.Event, 4)}
}

func (f *fakeScreen) SetContent(int, int, rune, []rune, tcell.Style) {}
func (f *fakeScreen) Size() (int, int)                               { return 80, 40 }
func (f *fakeScreen) Clear()                                         {}

func (f *fakeScreen) Show() {
	f.mu.Lock()
	f.shows++
	f.mu.Unlock()
}

func (f *fakeScreen) PollEvent() tcell.Event {
	f.mu.Lock()
	f.polls++
	f.mu.Unlock()
	ev, ok := <-f.events
	if !ok {
		return nil
	}
	return ev
}

func (f *fakeScreen) pollCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.polls
}

func (f *fakeScreen) showCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shows
}

func fastController() *snake.Controller {
	cfg := snake.DefaultConfig()
	cfg.Grid = 6
	cfg.Tick = 40 * time.Millisecond
	cfg.Seed = 5
	return snake.NewController(cfg, nil, snake.WithLogger(log.New(io.Discard, "", 0)))
}

func TestRunTicksUntilGameOver(t *testing.T) {
	ctrl := fastController()
	if err := ctrl.Start(); err != nil {
		t.Fatal(err)
	}
	scr := newFakeScreen()
	defer close(scr.events)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- Run(ctx, scr, ctrl, Options{}) }()

	deadline := time.After(3 * time.Second)
	for ctrl.Phase() == snake.PhaseActive {
		select {
		case <-deadline:
			t.Fatal("snake heading right should hit the wall")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if f := ctrl.Frame(); f.Cause != snake.CauseWall {
		t.Fatalf("expected wall, got %v", f.Cause)
	}
	if scr.showCount() < 2 {
		t.Fatal("expected the board to be redrawn")
	}
}

func TestRunStopsWhenScreenCloses(t *testing.T) {
	ctrl := fastController()
	scr := newFakeScreen()
	scr.events <- tcell.NewEventResize(80, 40)
	close(scr.events)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), scr, ctrl, Options{}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the screen closed")
	}
	if ctrl.Phase() != snake.PhaseIdle {
		t.Fatal("idle controller must not start on its own")
	}
}

func TestRunQuitStopsPolling(t *testing.T) {
	ctrl := fastController()
	scr := newFakeScreen()
	defer close(scr.events)
	scr.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), scr, ctrl, Options{}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(time.Second):
		t.Fatal("Esc did not stop Run")
	}

	// The reader is parked in its second PollEvent. Once that returns it must
	// exit instead of polling again.
	scr.events <- tcell.NewEventResize(80, 40)
	deadline := time.After(time.Second)
	for len(scr.events) > 0 {
		select {
		case <-deadline:
			t.Fatal("pending event never read")
		case <-time.After(time.Millisecond):
		}
	}
	time.Sleep(50 * time.Millisecond)
	if n := scr.pollCount(); n != 2 {
		t.Fatalf("event reader kept polling after quit: %d polls", n)
	}
}
