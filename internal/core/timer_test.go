package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(120 * time.Millisecond)
	fs.now = clock.now

	if fs.ShouldStep() {
		t.Fatal("first call must only anchor the clock")
	}

	fired := 0
	for i := 0; i < 12; i++ {
		clock.advance(10 * time.Millisecond)
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("expected exactly one tick after 120ms, got %d", fired)
	}
}

func TestFixedStepCollapsesStalls(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(5 * time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("stall should not cause a burst of ticks, got %d", fired)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultTickInterval {
		t.Fatalf("expected default interval %v, got %v", DefaultTickInterval, fs.Interval())
	}
	fs.SetInterval(-5)
	if fs.Interval() != DefaultTickInterval {
		t.Fatalf("negative interval should fall back to default, got %v", fs.Interval())
	}
}
