package snake

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"snake-arcade/internal/core"
	"snake-arcade/internal/score"
	pcore "snake-arcade/pkg/core"
)

// Tick speed bounds exposed on the HUD.
const (
	minTickMS  = 40
	maxTickMS  = 400
	tickStepMS = 10
)

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers fn to receive a Frame after every Start and Tick.
// Observers run on the caller's goroutine after the controller lock is
// released.
func WithObserver(fn func(Frame)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller owns the single game session and is its only writer. Input
// handlers call Steer, the scheduler calls Tick, and both may run on
// different goroutines.
type Controller struct {
	mu      sync.Mutex
	cfg     Config
	store   score.Store
	rng     *pcore.RNG
	session *Session
	phase   Phase
	best    int
	record  bool
	ate     bool
	runID   string

	observers []func(Frame)
	logger    *log.Logger
	now       func() time.Time
}

// NewController builds an idle controller and loads the stored best score.
// A nil store keeps scores in memory.
func NewController(cfg Config, store score.Store, opts ...Option) *Controller {
	if store == nil {
		store = score.NewMemoryStore()
	}
	if cfg.ScoreKey == "" {
		cfg.ScoreKey = DefaultScoreKey
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTickInterval
	}
	cfg.Tick = clampTick(cfg.Tick)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c := &Controller{
		cfg:    cfg,
		store:  store,
		rng:    pcore.NewRNG(seed),
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	rec, err := store.Load(cfg.ScoreKey)
	if err != nil {
		c.logger.Printf("snake: load best score: %v", err)
	}
	c.best = rec.Score
	return c
}

// Start discards any previous session and begins a new one.
func (c *Controller) Start() error {
	c.mu.Lock()
	sessionSeed := c.rng.Seed()
	s, err := NewSession(c.cfg.Grid, pcore.Stream(sessionSeed))
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.session = s
	c.phase = PhaseActive
	c.record = false
	c.ate = false
	c.runID = uuid.NewString()
	c.logger.Printf("snake: run %s started (grid %d, seed %d)", c.runID, c.cfg.Grid, sessionSeed)
	f := c.frameLocked()
	c.mu.Unlock()

	c.notify(f)
	return nil
}

// Steer requests a heading change. It is ignored unless a game is running.
func (c *Controller) Steer(h core.Heading) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseActive {
		return
	}
	c.session.SetHeading(h)
}

// Tick advances the running game by one step. Outside PhaseActive it returns
// a zero Result and changes nothing.
func (c *Controller) Tick() Result {
	c.mu.Lock()
	if c.phase != PhaseActive {
		c.mu.Unlock()
		return Result{}
	}
	res := c.session.Step()
	c.ate = res.Ate
	if res.Terminal {
		c.finishLocked(res)
	}
	f := c.frameLocked()
	c.mu.Unlock()

	c.notify(f)
	return res
}

func (c *Controller) finishLocked(res Result) {
	c.phase = PhaseTerminal
	best, record := EndSession(c.session, c.best)
	c.best = best
	c.record = record
	c.logger.Printf("snake: run %s over (%s) score %d best %d", c.runID, res.Cause, res.Score, best)
	if !record {
		return
	}
	rec := score.Record{Score: best, RunID: c.runID, SetAt: c.now()}
	if err := c.store.Save(c.cfg.ScoreKey, rec); err != nil {
		c.logger.Printf("snake: save best score: %v", err)
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Best returns the best score known to the controller.
func (c *Controller) Best() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.best
}

// Grid returns the board edge length.
func (c *Controller) Grid() int { return c.cfg.Grid }

// Interval returns the configured tick period.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Tick
}

// Frame returns a snapshot of the current state.
func (c *Controller) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

func (c *Controller) frameLocked() Frame {
	f := Frame{
		Phase:     c.phase,
		Grid:      c.cfg.Grid,
		Best:      c.best,
		NewRecord: c.record,
		Ate:       c.ate,
		RunID:     c.runID,
	}
	if c.session == nil {
		return f
	}
	f.Snake = c.session.Snake()
	f.Food = c.session.Food()
	f.Score = c.session.Score()
	f.Cause = c.session.Cause()
	f.Tick = c.session.Ticks()
	return f
}

func (c *Controller) notify(f Frame) {
	for _, fn := range c.observers {
		fn(f)
	}
}

// Parameters reports the values shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	f := c.Frame()
	tick := c.Interval()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Score",
			Params: []core.Parameter{
				core.IntParam("score", "Score", f.Score),
				core.IntParam("best", "High", f.Best),
				core.IntParam("length", "Length", len(f.Snake)),
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				core.TextParam("phase", "State", f.Phase.String()),
				core.IntParam("tick_ms", "Tick (ms)", int(tick/time.Millisecond)),
			},
		},
	}}
}

var tickControl = core.ParameterControl{Key: "tick_ms", Label: "Tick (ms)", Step: tickStepMS, Min: minTickMS, Max: maxTickMS}

// clampTick bounds d to the range the HUD can adjust.
func clampTick(d time.Duration) time.Duration {
	return time.Duration(tickControl.Clamp(int(d/time.Millisecond))) * time.Millisecond
}

// ParameterControls lists the HUD-adjustable parameters.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{tickControl}
}

// SetIntParameter applies a HUD adjustment. Only tick_ms is adjustable.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != "tick_ms" {
		return false
	}
	tick := clampTick(time.Duration(value) * time.Millisecond)
	value = int(tick / time.Millisecond)
	c.mu.Lock()
	c.cfg.Tick = tick
	c.mu.Unlock()
	c.logger.Printf("snake: tick set to %dms", value)
	return true
}
