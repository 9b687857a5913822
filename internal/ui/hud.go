//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"snake-arcade/internal/core"
	"snake-arcade/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledFill = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disabledText = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the score panel, speed controls and d-pad to the right of the
// board.
type HUD struct {
	src      Source
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot
	controls []controlState
	skip     map[string]bool
	pad      input.Pad
	offsetX  int
}

// NewHUD constructs a HUD for src with the given panel width.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, skip: map[string]bool{}}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	controls := src.ParameterControls()
	for _, c := range controls {
		h.skip[c.Key] = true
	}
	h.controls = layoutControls(controls, width, 0)
	return h
}

// Width returns the panel width.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the panel. It returns
// the heading of a d-pad button pressed this frame.
func (h *HUD) Update(offsetX, height int) (core.Heading, bool) {
	if h == nil || h.width <= 0 {
		return 0, false
	}
	h.offsetX = offsetX
	h.snapshot = h.src.Parameters()
	h.relayout(height)
	refresh(h.controls, h.snapshot)

	var heading core.Heading
	var steered bool
	for _, pt := range pressedPoints() {
		px := pt.X - offsetX
		if px < 0 {
			continue
		}
		if hd, ok := h.pad.Hit(px, pt.Y); ok {
			heading, steered = hd, true
			continue
		}
		click(h.controls, h.src, px, pt.Y)
	}
	return heading, steered
}

// Owns reports whether screen point (x, y) falls on the panel.
func (h *HUD) Owns(x, y int) bool {
	return h != nil && h.width > 0 && x >= h.offsetX && x < h.offsetX+h.width
}

func (h *HUD) relayout(height int) {
	lines := len(infoLines(h.snapshot, h.skip))
	top := panelPadding + headerBaseline + lines*textLine + panelPadding
	if len(h.controls) > 0 && h.controls[0].top != top {
		h.controls = layoutControls(controlsOf(h.controls), h.width, top)
	}
	h.pad = padFor(h.width, height)
}

func controlsOf(states []controlState) []core.ParameterControl {
	out := make([]core.ParameterControl, len(states))
	for i, st := range states {
		out[i] = st.control
	}
	return out
}

// pressedPoints returns the mouse and touch positions that went down this
// frame.
func pressedPoints() []image.Point {
	var pts []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, image.Pt(x, y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

// Draw paints the panel at offsetX, height pixels tall.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Snake", face, panelPadding, y, titleColor)
	for _, line := range infoLines(h.snapshot, h.skip) {
		y += textLine
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
	}

	for i := range h.controls {
		st := &h.controls[i]
		text.Draw(h.panel, st.control.Label, face, panelPadding, st.top+labelBaseline, labelColor)
		value, col := "--", dimColor
		if st.hasValue {
			value, col = strconv.Itoa(st.value), labelColor
		}
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, st.minusRect.Min.X-buttonGap-bounds.Dx(), st.top+labelBaseline, col)
		_, canDec := st.target(-1)
		_, canInc := st.target(1)
		h.drawButton(st.minusRect, "-", canDec)
		h.drawButton(st.plusRect, "+", canInc)
	}

	for _, hd := range core.Headings {
		h.drawButton(h.pad.Rect(hd), input.Label(hd), true)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = disabledFill, disabledText
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
