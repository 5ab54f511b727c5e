// Package config loads sketchpad settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds user-tunable settings. Zero fields are filled from Default.
type Config struct {
	CanvasSize  int      `yaml:"canvas_size"`
	ExportScale int      `yaml:"export_scale"`
	Background  string   `yaml:"background"`
	PenColor    string   `yaml:"pen_color"`
	Stickers    []string `yaml:"stickers"`
	LogLevel    string   `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CanvasSize:  256,
		ExportScale: 4,
		Background:  "#ffa500",
		PenColor:    "#000000",
		Stickers:    []string{"🎃", "👻", "🦇"},
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config YAML: %w", err)
	}
	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.CanvasSize != 0 {
		c.CanvasSize = o.CanvasSize
	}
	if o.ExportScale != 0 {
		c.ExportScale = o.ExportScale
	}
	if o.Background != "" {
		c.Background = o.Background
	}
	if o.PenColor != "" {
		c.PenColor = o.PenColor
	}
	if o.Stickers != nil {
		c.Stickers = o.Stickers
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate checks ranges and color syntax.
func (c Config) Validate() error {
	if c.CanvasSize < 16 || c.CanvasSize > 4096 {
		return fmt.Errorf("%w: canvas_size %d out of range [16,4096]", ErrInvalidConfig, c.CanvasSize)
	}
	if c.ExportScale < 1 || c.ExportScale > 16 {
		return fmt.Errorf("%w: export_scale %d out of range [1,16]", ErrInvalidConfig, c.ExportScale)
	}
	if _, err := ParseHex(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseHex(c.PenColor); err != nil {
		return fmt.Errorf("%w: pen_color: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BackgroundColor returns the parsed background. Call after Validate.
func (c Config) BackgroundColor() color.NRGBA {
	col, _ := ParseHex(c.Background)
	return col
}

// Pen returns the parsed initial pen color. Call after Validate.
func (c Config) Pen() color.NRGBA {
	col, _ := ParseHex(c.PenColor)
	return col
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
