//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"smoothlife/internal/app"
	"smoothlife/internal/smoothlife"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := flags.Load(flag.CommandLine)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sim, err := smoothlife.NewWithConfig(cfg.Sim())
	if err != nil {
		slog.Error("invalid simulation config", "error", err)
		os.Exit(1)
	}

	game, err := app.New(sim, cfg, logger)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("smoothlife — " + sim.Name())
	ebiten.SetTPS(app.UITPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
