package render

import (
	"image/color"
	"testing"

	"snake-arcade/internal/snake"
)

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{snake.CellEmpty, snake.CellHead, snake.CellFood, 200}
	buf := make([]byte, len(cells)*4)
	FillPaletteRGBA(buf, cells, DefaultPalette)

	head := DefaultPalette[snake.CellHead]
	if buf[4] != head.R || buf[5] != head.G || buf[6] != head.B || buf[7] != head.A {
		t.Fatalf("head pixel = %v", buf[4:8])
	}
	last := DefaultPalette[len(DefaultPalette)-1]
	if buf[12] != last.R || buf[15] != last.A {
		t.Fatalf("out-of-range value should clamp to last colour, got %v", buf[12:16])
	}

	FillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette must clear buffer, byte %d = %d", i, b)
		}
	}
}

func TestDefaultPaletteCoversCodes(t *testing.T) {
	for _, code := range []uint8{snake.CellEmpty, snake.CellBody, snake.CellHead, snake.CellFood} {
		if int(code) >= len(DefaultPalette) || DefaultPalette[code] == (color.RGBA{}) {
			t.Errorf("code %d has no colour", code)
		}
	}
}

func TestFitScale(t *testing.T) {
	cases := []struct {
		w, h, grid, want int
	}{
		{400, 400, 20, 20},
		{1280, 720, 20, 36},
		{500, 300, 20, 15},
		{10, 10, 20, 1},
		{100, 100, 0, 1},
	}
	for _, tc := range cases {
		if got := FitScale(tc.w, tc.h, tc.grid); got != tc.want {
			t.Errorf("FitScale(%d,%d,%d) = %d, want %d", tc.w, tc.h, tc.grid, got, tc.want)
		}
	}
}

func TestFitBoard(t *testing.T) {
	side, tile := FitBoard(1280, 690, 500, 20)
	if side != 500 || tile != 25 {
		t.Fatalf("expected 500/25, got %d/%d", side, tile)
	}
	side, tile = FitBoard(343, 900, 0, 20)
	if side != 340 || tile != 17 {
		t.Fatalf("expected 340/17, got %d/%d", side, tile)
	}
	side, tile = FitBoard(5, 5, 0, 20)
	if side != 20 || tile != 1 {
		t.Fatalf("tiny surface should fall back to one pixel per cell, got %d/%d", side, tile)
	}
}
