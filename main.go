package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/xvzls/BrainMade-org/config"
	"github.com/xvzls/BrainMade-org/site"
)

func main() {
	cfgPath := flag.String("config", "", "path to an optional JSON configuration file")
	outputDir := flag.String("output", "", "output directory (overrides outputDir in the config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if dir := strings.TrimSpace(*outputDir); dir != "" {
		cfg.OutputDir = dir
	}

	logger := newLogger(cfg.LogLevel)
	logger.Debug("starting", "version", GENERATOR_SIGNATURE, "output", cfg.OutputDir, "minify", cfg.Minify)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := site.NewService(cfg, logger)
	if err := svc.BuildStatic(ctx); err != nil {
		logger.Error("build", "error", err)
		stop()
		os.Exit(1)
	}
	fmt.Println("Built site OK!")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
