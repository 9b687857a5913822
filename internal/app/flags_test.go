package app

import (
	"flag"
	"io"
	"path/filepath"
	"testing"
	"time"

	"snake-arcade/internal/score"
	"snake-arcade/internal/snake"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-grid", "30", "-tick", "80ms", "-seed", "7", "-scores", "", "-mute"})
	if err != nil {
		t.Fatal(err)
	}
	cfg.Normalize()

	g := cfg.Game()
	if g.Grid != 30 || g.Tick != 80*time.Millisecond || g.Seed != 7 || g.ScoreKey != snake.DefaultScoreKey {
		t.Fatalf("unexpected game config %+v", g)
	}
	if !cfg.Mute {
		t.Fatal("expected -mute to be set")
	}
	if _, ok := cfg.Store().(*score.MemoryStore); !ok {
		t.Fatal("empty -scores should keep scores in memory")
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := &Config{Grid: 2, Tick: -time.Second, Scale: 0, HUD: -5}
	cfg.Normalize()
	if cfg.Grid != snake.MinGridSize || cfg.Tick != 120*time.Millisecond || cfg.Scale != 1 || cfg.HUD != 0 {
		t.Fatalf("unexpected normalized config %+v", cfg)
	}
	if cfg.Key != snake.DefaultScoreKey {
		t.Fatalf("expected default key, got %q", cfg.Key)
	}
}

func TestConfigFileStore(t *testing.T) {
	cfg := NewConfig()
	cfg.Scores = filepath.Join(t.TempDir(), "scores.json")
	fs, ok := cfg.Store().(*score.FileStore)
	if !ok || fs.Path() != cfg.Scores {
		t.Fatalf("expected a file store at %s", cfg.Scores)
	}
}

func TestConfigGameReadsValues(t *testing.T) {
	cfg := &Config{Grid: 30, Tick: 90 * time.Millisecond, Seed: 12, Key: "arcade"}
	vals := cfg.Values()
	if vals["grid"] != "30" || vals["tick_ms"] != "90" || vals["seed"] != "12" || vals["score_key"] != "arcade" {
		t.Fatalf("unexpected values %v", vals)
	}
	want := snake.Config{Grid: 30, Tick: 90 * time.Millisecond, Seed: 12, ScoreKey: "arcade"}
	if got := cfg.Game(); got != want {
		t.Fatalf("Game() = %+v, want %+v", got, want)
	}

	// Values FromMap rejects fall back to the engine defaults.
	bad := &Config{Grid: 2, Tick: 0, Key: ""}
	if got := bad.Game(); got != snake.DefaultConfig() {
		t.Fatalf("Game() = %+v, want defaults", got)
	}
}
