package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"sketchpad/internal/config"
	"sketchpad/internal/ui"
)

const defaultConfigPath = "sketchpad.yaml"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sketchpad:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sketchpad", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "path to YAML settings file")
	scale := fs.Int("scale", 0, "export scale multiple (overrides config)")
	size := fs.Int("size", 0, "logical canvas size in units (overrides config)")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *scale != 0 {
		cfg.ExportScale = *scale
	}
	if *size != 0 {
		cfg.CanvasSize = *size
	}
	if *debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	if *debug {
		gg.SetLogger(logger.With("component", "gg"))
	}
	return ui.RunApp(cfg, logger)
}

func newLogger(cfg config.Config) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
