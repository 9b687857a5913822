package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/internal/app"
	"snake-arcade/internal/snake"
	"snake-arcade/internal/sound"
	"snake-arcade/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "snake-term.log", "log file (the terminal is busy drawing the board)")
	flag.Parse()
	cfg.Normalize()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	spk := sound.NewSpeaker()
	spk.SetMuted(cfg.Mute)
	if err := spk.Init(); err != nil {
		logger.Printf("audio initialization failed: %v", err)
	}
	defer spk.Close()

	ctrl := snake.NewController(cfg.Game(), cfg.Store(),
		snake.WithLogger(logger),
		snake.WithObserver(spk.Observe),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.Run(ctx, screen, ctrl, term.Options{Sound: spk, Logger: logger})
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
