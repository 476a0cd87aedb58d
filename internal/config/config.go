// Package config loads the editor settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"DrawShape/internal/geom"
	"DrawShape/internal/state"
)

// Tool names the kind of shape the editor draws.
type Tool string

const (
	// ToolPolyline draws open six-vertex broken lines.
	ToolPolyline Tool = "polyline"
	// ToolHexagon draws closed, non-self-intersecting hexagons.
	ToolHexagon Tool = "hexagon"
)

// Config holds the editor settings.
type Config struct {
	Tool         Tool    `toml:"tool"`
	BorderColor  string  `toml:"border_color"`
	HitEpsilon   float64 `toml:"hit_epsilon"`
	MoveStep     float64 `toml:"move_step"`
	StrokeWidth  float64 `toml:"stroke_width"`
	LogLevel     string  `toml:"log_level"`
	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		Tool:         ToolPolyline,
		BorderColor:  "#000000",
		HitEpsilon:   geom.HitEpsilon,
		MoveStep:     5,
		StrokeWidth:  state.StrokeWidth,
		LogLevel:     "info",
		WindowWidth:  1024,
		WindowHeight: 768,
	}
}

// DefaultPath returns the per-user location of the settings file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "drawshape", "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch c.Tool {
	case ToolPolyline, ToolHexagon:
	default:
		return fmt.Errorf("unknown tool %q", c.Tool)
	}
	if _, err := state.ParseColor(c.BorderColor); err != nil {
		return err
	}
	if c.HitEpsilon <= 0 {
		return fmt.Errorf("hit_epsilon must be positive, got %v", c.HitEpsilon)
	}
	if c.MoveStep <= 0 {
		return fmt.Errorf("move_step must be positive, got %v", c.MoveStep)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width must be positive, got %v", c.StrokeWidth)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Border returns the configured initial border colour.
func (c Config) Border() state.Color {
	col, err := state.ParseColor(c.BorderColor)
	if err != nil {
		return state.Color{}
	}
	return col
}

// Acceptor returns the vertex acceptance rule of the configured tool.
func (c Config) Acceptor() state.Acceptor {
	if c.Tool == ToolHexagon {
		return state.HexagonAcceptor(state.VertexCount)
	}
	return state.PolylineAcceptor
}

// Closed reports whether the configured tool draws closed shapes.
func (c Config) Closed() bool {
	return c.Tool == ToolHexagon
}
