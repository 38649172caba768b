//go:build !ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"smoothlife/internal/app"
)

// Without the ebiten tag the binary runs headless. Build with -tags ebiten
// for the windowed viewer.
func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(flags, logger); err != nil {
		slog.Error("simulation stopped", "error", err)
		os.Exit(1)
	}
}

func run(flags *app.Flags, logger *slog.Logger) error {
	cfg, err := flags.Load(flag.CommandLine)
	if err != nil {
		return err
	}

	runner, err := app.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	defer runner.Close()
	runner.Realtime = flags.Realtime

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
