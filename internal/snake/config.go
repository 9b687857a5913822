package snake

import (
	"strconv"
	"time"

	"snake-arcade/internal/core"
)

// DefaultScoreKey is the store key best scores are filed under.
const DefaultScoreKey = "snakeHighScore"

// Config holds the parameters of a Controller.
type Config struct {
	Grid     int
	Tick     time.Duration
	Seed     int64
	ScoreKey string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Grid:     20,
		Tick:     core.DefaultTickInterval,
		ScoreKey: DefaultScoreKey,
	}
}

// FromMap populates a Config from a string map. Values that fail to parse or
// fall outside their range are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinGridSize {
			c.Grid = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Tick = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["score_key"]; ok && v != "" {
		c.ScoreKey = v
	}
	return c
}
