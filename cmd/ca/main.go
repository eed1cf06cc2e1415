//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"cubelife/internal/app"
	"cubelife/internal/config"
	"cubelife/internal/logging"
	"cubelife/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 220

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	var logOpts logging.Options
	logOpts.Bind(flag.CommandLine)
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := logging.Install(os.Stderr, logOpts)
	if err != nil {
		slog.Error("invalid logging flags", "error", err)
		os.Exit(1)
	}

	if *configPath != "" {
		overrides := map[string]string{}
		flag.Visit(func(f *flag.Flag) { overrides[f.Name] = f.Value.String() })
		if cfg, err = config.Load(*configPath); err == nil {
			err = cfg.Apply(overrides)
		}
	} else {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	scene, err := app.NewScene(cfg)
	if err != nil {
		logger.Error("failed to build scene", "error", err)
		os.Exit(1)
	}
	scene.SetLogger(logger)

	stats, err := telemetry.CreateCSV(cfg.Telemetry.StatsPath)
	if err != nil {
		logger.Error("failed to open stats output", "error", err)
		os.Exit(1)
	}
	defer stats.Close()
	if stats != nil {
		scene.SetRecorder(stats)
	}

	game := app.New(scene, cfg.Window.Title, hudWidth)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Window.Width+hudWidth, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "grid_w", cfg.Grid.Width, "grid_h", cfg.Grid.Height,
		"seed", cfg.Grid.Seed, "pattern", cfg.Grid.Pattern, "lifecycle", cfg.Lifecycle())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
