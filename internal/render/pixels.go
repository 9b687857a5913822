package render

import (
	"image/color"

	"snake-arcade/internal/snake"
)

// DefaultPalette colours the snake display codes, indexed by snake.Cell*.
var DefaultPalette = []color.RGBA{
	snake.CellEmpty: {R: 15, G: 23, B: 42, A: 255},
	snake.CellBody:  {R: 16, G: 185, B: 129, A: 255},
	snake.CellHead:  {R: 52, G: 211, B: 153, A: 255},
	snake.CellFood:  {R: 239, G: 68, B: 68, A: 255},
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last colour.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
