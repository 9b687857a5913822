//go:build ebiten

package app

import (
	"image/color"
	"log"

	"snake-arcade/internal/core"
	"snake-arcade/internal/input"
	"snake-arcade/internal/render"
	"snake-arcade/internal/snake"
	"snake-arcade/internal/sound"
	"snake-arcade/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var backdrop = color.RGBA{R: 2, G: 6, B: 23, A: 255}

// Game adapts a snake controller to the ebiten.Game interface.
type Game struct {
	ctrl    *snake.Controller
	grid    *core.ByteGrid
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	keys     input.Keymap
	swipe    *input.Swipe
	touchID  ebiten.TouchID
	touching bool

	audio   *audio.Context
	players map[sound.Cue]*audio.Player
	muted   bool

	width, height int
}

// New builds a Game and its controller from cfg.
func New(cfg *Config) *Game {
	cfg.Normalize()
	g := &Game{
		grid:    core.NewByteGrid(cfg.Grid, cfg.Grid),
		painter: render.NewGridPainter(cfg.Grid, cfg.Grid, render.DefaultPalette),
		overlay: ui.NewOverlay(),
		step:    core.NewFixedStep(cfg.Tick),
		keys:    input.DefaultKeymap(),
		swipe:   input.NewSwipe(),
		muted:   cfg.Mute,
		width:   cfg.Grid*cfg.Scale + cfg.HUD,
		height:  cfg.Grid * cfg.Scale,
	}
	g.ctrl = snake.NewController(cfg.Game(), cfg.Store(), snake.WithObserver(g.observe))
	g.hud = ui.NewHUD(g.ctrl, cfg.HUD)
	g.initAudio()
	return g
}

// Controller exposes the game's controller.
func (g *Game) Controller() *snake.Controller { return g.ctrl }

func (g *Game) initAudio() {
	g.audio = audio.NewContext(int(sound.SampleRate))
	g.players = make(map[sound.Cue]*audio.Player, len(sound.Cues))
	for _, c := range sound.Cues {
		g.players[c] = g.audio.NewPlayerFromBytes(sound.PCM16(c.Streamer(sound.SampleRate)))
	}
}

func (g *Game) observe(f snake.Frame) {
	if g.muted {
		return
	}
	p, ok := g.players[sound.CueFor(f)]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("snake: rewind cue: %v", err)
		return
	}
	p.Play()
}

func (g *Game) start() {
	if g.ctrl.Phase() == snake.PhaseActive {
		return
	}
	if err := g.ctrl.Start(); err != nil {
		log.Printf("snake: start: %v", err)
		return
	}
	g.step.Reset()
}

// Update handles input and advances the game on its fixed tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.start()
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if h, ok := g.keys.Lookup(k.String()); ok {
			g.ctrl.Steer(h)
		}
	}

	side, _ := g.board()
	if h, ok := g.hud.Update(side, g.height); ok {
		g.ctrl.Steer(h)
	}
	g.updatePointer()

	g.step.SetInterval(g.ctrl.Interval())
	if g.ctrl.Phase() == snake.PhaseActive && g.step.ShouldStep() {
		g.ctrl.Tick()
	}
	return nil
}

// updatePointer turns drags on the board into swipes. A tap on the board
// outside a running game starts one.
func (g *Game) updatePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.press(x, y)
	}
	if g.swipe.Active() && !g.touching {
		x, y := ebiten.CursorPosition()
		g.drag(x, y)
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.swipe.End()
		}
	}

	if !g.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			g.touchID = ids[0]
			g.touching = true
			x, y := ebiten.TouchPosition(g.touchID)
			g.press(x, y)
		}
	}
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			g.swipe.End()
			return
		}
		x, y := ebiten.TouchPosition(g.touchID)
		g.drag(x, y)
	}
}

func (g *Game) press(x, y int) {
	if g.hud.Owns(x, y) {
		return
	}
	if g.ctrl.Phase() != snake.PhaseActive {
		g.start()
	}
	g.swipe.Begin(float64(x), float64(y))
}

func (g *Game) drag(x, y int) {
	if h, ok := g.swipe.Move(float64(x), float64(y)); ok {
		g.ctrl.Steer(h)
	}
}

// board returns the board edge and tile size for the current layout.
func (g *Game) board() (side, tile int) {
	return render.FitBoard(g.width-g.hud.Width(), g.height, 0, g.grid.W)
}

// Draw renders the board, banner and side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	f := g.ctrl.Frame()
	f.Paint(g.grid)
	side, tile := g.board()
	g.painter.Blit(screen, g.grid, 0, 0, tile)
	g.overlay.Draw(screen, f, 0, 0, side)
	g.hud.Draw(screen, side, g.height)
}

// Layout tracks the window size; the board rescales to fit it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
