package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"zc-features/internal/slogx"
)

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	p, err := InitializePipeline()
	if err != nil {
		slog.Error("failed to initialize pipeline", "error", err)
		os.Exit(1)
	}
	cfg := p.Config

	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("using bar source", "source", p.Source.Name(), "format", cfg.SaveFormat, "output", cfg.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rep, err := p.Run(ctx)
	if err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
	slog.Info("done", "bars", rep.Bars, "matrices", rep.Matrices, "output", rep.Output, "elapsed", rep.Elapsed)
}
