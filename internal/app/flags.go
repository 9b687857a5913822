package app

import (
	"flag"
	"strconv"
	"time"

	"snake-arcade/internal/core"
	"snake-arcade/internal/score"
	"snake-arcade/internal/snake"
)

// DefaultScoresFile is where high scores are kept unless -scores says
// otherwise.
const DefaultScoresFile = "snake_highscore.json"

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Grid   int
	Tick   time.Duration
	Seed   int64
	Scale  int
	HUD    int
	Scores string
	Key    string
	Mute   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Grid:   20,
		Tick:   core.DefaultTickInterval,
		Scale:  24,
		HUD:    200,
		Scores: DefaultScoresFile,
		Key:    snake.DefaultScoreKey,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid, "grid", c.Grid, "board edge length in cells")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "time between snake moves")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement (0 picks one from the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "initial pixels per cell")
	fs.IntVar(&c.HUD, "hud", c.HUD, "side panel width in pixels (0 hides it)")
	fs.StringVar(&c.Scores, "scores", c.Scores, "high score file (empty keeps scores in memory)")
	fs.StringVar(&c.Key, "key", c.Key, "high score key inside the scores file")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "start with sound off")
}

// Normalize clamps out-of-range values to usable ones.
func (c *Config) Normalize() {
	if c.Grid < snake.MinGridSize {
		c.Grid = snake.MinGridSize
	}
	if c.Tick <= 0 {
		c.Tick = core.DefaultTickInterval
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.HUD < 0 {
		c.HUD = 0
	}
	if c.Key == "" {
		c.Key = snake.DefaultScoreKey
	}
}

// Values returns the engine settings as the key/value pairs snake.FromMap
// reads.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"grid":      strconv.Itoa(c.Grid),
		"tick_ms":   strconv.FormatInt(c.Tick.Milliseconds(), 10),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"score_key": c.Key,
	}
}

// Game returns the engine configuration.
func (c *Config) Game() snake.Config {
	return snake.FromMap(c.Values())
}

// Store opens the configured high score store.
func (c *Config) Store() score.Store {
	if c.Scores == "" {
		return score.NewMemoryStore()
	}
	return score.NewFileStore(c.Scores)
}
