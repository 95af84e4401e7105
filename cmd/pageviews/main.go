// Command pageviews cleans the forum page-view dataset and writes
// line_plot.png, bar_plot.png and box_plot.png.
package main

import (
	"log/slog"
	"os"

	"github.com/sartorproj/pageviews/internal/config"
	"github.com/sartorproj/pageviews/internal/logging"
	"github.com/sartorproj/pageviews/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging, os.Stdout)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Visualization pass failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Starting visualization pass",
		slog.String("input", cfg.Input),
		slog.String("output_dir", cfg.OutputDir))

	p, err := pipeline.Open(cfg.Input,
		pipeline.WithOutputDir(cfg.OutputDir),
		pipeline.WithLogger(logger))
	if err != nil {
		return err
	}
	return p.RunAll()
}
