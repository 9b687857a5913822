package core

import "testing"

func TestHeadingDeltaAndOpposite(t *testing.T) {
	cases := []struct {
		h        Heading
		dx, dy   int
		opposite Heading
	}{
		{HeadingUp, 0, -1, HeadingDown},
		{HeadingDown, 0, 1, HeadingUp},
		{HeadingLeft, -1, 0, HeadingRight},
		{HeadingRight, 1, 0, HeadingLeft},
	}
	for _, tc := range cases {
		dx, dy := tc.h.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v delta = (%d,%d), want (%d,%d)", tc.h, dx, dy, tc.dx, tc.dy)
		}
		if got := tc.h.Opposite(); got != tc.opposite {
			t.Errorf("%v opposite = %v, want %v", tc.h, got, tc.opposite)
		}
		if !tc.h.Valid() {
			t.Errorf("%v should be valid", tc.h)
		}
	}
	var zero Heading
	if zero.Valid() {
		t.Fatal("zero heading must not be valid")
	}
	if dx, dy := zero.Delta(); dx != 0 || dy != 0 {
		t.Fatalf("zero heading should not move, got (%d,%d)", dx, dy)
	}
}

func TestCellMoveAndBounds(t *testing.T) {
	c := Cell{X: 0, Y: 3}
	if got := c.Move(HeadingLeft); got != (Cell{X: -1, Y: 3}) {
		t.Fatalf("move left = %v", got)
	}
	if c.Move(HeadingLeft).InSquare(4) {
		t.Fatal("x=-1 must be off the board")
	}
	if c.Move(HeadingDown).InSquare(4) {
		t.Fatal("y=4 must be off a 4x4 board")
	}
	if !c.InSquare(4) {
		t.Fatal("(0,3) lies on a 4x4 board")
	}
}

func TestByteGridIgnoresOffGridWrites(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(Cell{X: 2, Y: 1}, 7)
	g.Set(Cell{X: 3, Y: 0}, 9)
	g.Set(Cell{X: -1, Y: 0}, 9)

	if got := g.At(Cell{X: 2, Y: 1}); got != 7 {
		t.Fatalf("expected 7 at (2,1), got %d", got)
	}
	sum := 0
	for _, v := range g.Cells() {
		sum += int(v)
	}
	if sum != 7 {
		t.Fatalf("off-grid writes leaked into buffer, sum=%d", sum)
	}
	g.Clear()
	if g.At(Cell{X: 2, Y: 1}) != 0 {
		t.Fatal("Clear should zero the buffer")
	}
}
