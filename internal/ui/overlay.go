//go:build ebiten

package ui

import (
	"image/color"

	"snake-arcade/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	shadeColor  = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	bannerColor = color.RGBA{R: 250, G: 204, B: 21, A: 255}
)

// Overlay dims the board and prints the start or game-over banner.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the banner for f over the side×side board at (x, y). Nothing
// is drawn while a game is running.
func (o *Overlay) Draw(screen *ebiten.Image, f snake.Frame, x, y, side int) {
	lines := overlayLines(f)
	if len(lines) == 0 || side <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(side), float64(side))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(shadeColor)
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	top := y + side/2 - len(lines)*textLine/2
	for i, line := range lines {
		if line == "" {
			continue
		}
		col := color.Color(labelColor)
		if i == 0 {
			col = bannerColor
		}
		w := text.BoundString(face, line).Dx()
		text.Draw(screen, line, face, x+(side-w)/2, top+i*textLine, col)
	}
}
