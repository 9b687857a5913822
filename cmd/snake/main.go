//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"snake-arcade/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	game := app.New(cfg)

	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowSize(cfg.Grid*cfg.Scale+cfg.HUD, cfg.Grid*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
