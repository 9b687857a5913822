//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"snake-arcade/internal/core"
)

// GridPainter keeps one image the size of the board and redraws it from a
// display-code grid every frame.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: palette,
	}
}

// Blit uploads grid into the painter image and draws it at (x, y) scaled by
// scale pixels per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, x, y, scale int) {
	cells := grid.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	FillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(gp.img, op)
}
