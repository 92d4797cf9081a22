//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mad-ripples/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger := log.New(os.Stderr, "ripples: ", log.LstdFlags)

	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		logger.Fatal(err)
	}

	game := app.New(cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-ripples")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
