package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/internal/core"
	"snake-arcade/internal/snake"
)

// Screen is the part of tcell.Screen the terminal renderer draws through.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// Terminal board layout: one status row, then a bordered board where each cell
// takes two columns so it looks square in most fonts.
const (
	statusRow   = 0
	boardTop    = 1
	cellColumns = 2
	// statusColumns fits "score N  high N  length N" with four-digit values
	// plus the "(muted)" note.
	statusColumns = 44
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Terminal draws frames onto a character grid.
type Terminal struct {
	grid   *core.ByteGrid
	styles []tcell.Style
}

// NewTerminal returns a renderer for a gridSize×gridSize board.
func NewTerminal(gridSize int, palette []color.RGBA) *Terminal {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	bg := rgb(palette[snake.CellEmpty])
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		styles[i] = tcell.StyleDefault.Foreground(rgb(c)).Background(bg)
	}
	return &Terminal{grid: core.NewByteGrid(gridSize, gridSize), styles: styles}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// MinSize returns the smallest screen that fits the board and its chrome.
func (t *Terminal) MinSize() (w, h int) {
	return max(t.grid.W*cellColumns+2, statusColumns), boardTop + t.grid.H + 3
}

// CellPos returns the screen column and row of the left half of board cell c.
func (t *Terminal) CellPos(c core.Cell) (x, y int) {
	return 1 + c.X*cellColumns, boardTop + 1 + c.Y
}

// Draw renders f. note is appended to the status line when non-empty.
func (t *Terminal) Draw(s Screen, f snake.Frame, note string) {
	s.Clear()
	defer s.Show()

	sw, sh := s.Size()
	mw, mh := t.MinSize()
	if sw < mw || sh < mh {
		drawText(s, 0, 0, textStyle, fmt.Sprintf("enlarge terminal to %dx%d", mw, mh))
		return
	}

	status := fmt.Sprintf("score %d  high %d  length %d", f.Score, f.Best, len(f.Snake))
	if note != "" {
		status += "  " + note
	}
	drawText(s, 0, statusRow, textStyle, status)

	t.drawBorder(s)
	f.Paint(t.grid)
	for y := 0; y < t.grid.H; y++ {
		for x := 0; x < t.grid.W; x++ {
			c := core.Cell{X: x, Y: y}
			v := t.grid.At(c)
			r := ' '
			if v != snake.CellEmpty {
				r = '█'
			}
			style := t.style(v)
			px, py := t.CellPos(c)
			for i := 0; i < cellColumns; i++ {
				s.SetContent(px+i, py, r, nil, style)
			}
		}
	}

	banner, sub := bannerText(f)
	if banner == "" {
		return
	}
	mid := boardTop + 1 + t.grid.H/2
	t.drawCentered(s, mid-1, bannerStyle, banner)
	if sub != "" {
		t.drawCentered(s, mid+1, textStyle, sub)
	}
}

func (t *Terminal) style(v uint8) tcell.Style {
	if int(v) < len(t.styles) {
		return t.styles[v]
	}
	return t.styles[len(t.styles)-1]
}

func (t *Terminal) drawBorder(s Screen) {
	right := t.grid.W*cellColumns + 1
	bottom := boardTop + t.grid.H + 1
	for x := 1; x < right; x++ {
		s.SetContent(x, boardTop, tcell.RuneHLine, nil, borderStyle)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for y := boardTop + 1; y < bottom; y++ {
		s.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		s.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	s.SetContent(0, boardTop, tcell.RuneULCorner, nil, borderStyle)
	s.SetContent(right, boardTop, tcell.RuneURCorner, nil, borderStyle)
	s.SetContent(0, bottom, tcell.RuneLLCorner, nil, borderStyle)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
}

func (t *Terminal) drawCentered(s Screen, y int, style tcell.Style, msg string) {
	width := t.grid.W*cellColumns + 2
	x := (width - len([]rune(msg))) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, style, msg)
}

func bannerText(f snake.Frame) (banner, sub string) {
	switch f.Phase {
	case snake.PhaseIdle:
		return "SNAKE", "enter to start"
	case snake.PhaseTerminal:
		if f.NewRecord {
			return "NEW HIGH SCORE", "enter to play again"
		}
		return "GAME OVER", "enter to play again"
	default:
		return "", ""
	}
}

func drawText(s Screen, x, y int, style tcell.Style, msg string) {
	for i, r := range []rune(msg) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
