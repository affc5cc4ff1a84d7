// Package tinygui loads project configuration and turns it into the options
// of a retained GUI.
package tinygui

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/tinygui/retained"
)

// ConfigFile is the default project configuration file name.
const ConfigFile = "tinygui.toml"

// Config represents the tinygui.toml (or tinygui.yaml) configuration file
type Config struct {
	Display DisplayConfig          `toml:"display" yaml:"display"`
	Memory  MemoryConfig           `toml:"memory" yaml:"memory"`
	Log     LogConfig              `toml:"log" yaml:"log"`
	Theme   map[string]ThemeConfig `toml:"theme" yaml:"theme"`
}

type DisplayConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// MemoryConfig bounds widget storage. A zero budget means unlimited.
type MemoryConfig struct {
	Budget int `toml:"budget" yaml:"budget"`
}

type LogConfig struct {
	// debug, info, warn or error
	Level string `toml:"level" yaml:"level"`
	// text or json
	Format string `toml:"format" yaml:"format"`
}

// ThemeConfig replaces the default color table of one widget type.
// Colors are "#RRGGBB", "#AARRGGBB" or palette names.
type ThemeConfig struct {
	Colors []string `toml:"colors" yaml:"colors"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{Width: 240, Height: 320},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads the file at path on top of DefaultConfig. The format
// follows the extension: .yaml/.yml for YAML, anything else is TOML.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Memory.Budget < 0 {
		return fmt.Errorf("memory budget must not be negative, got %d", c.Memory.Budget)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if _, err := c.ThemeColors(); err != nil {
		return err
	}
	return nil
}

// ThemeColors parses the theme tables.
func (c *Config) ThemeColors() (map[string][]retained.Color, error) {
	if len(c.Theme) == 0 {
		return nil, nil
	}
	theme := make(map[string][]retained.Color, len(c.Theme))
	for name, t := range c.Theme {
		colors := make([]retained.Color, len(t.Colors))
		for i, s := range t.Colors {
			col, err := retained.ParseColor(s)
			if err != nil {
				return nil, fmt.Errorf("theme %s color %d: %w", name, i, err)
			}
			colors[i] = col
		}
		theme[name] = colors
	}
	return theme, nil
}

// Options builds GUI options. Geometry comes from the display section
// unless the caller replaces it with a real driver.
func (c *Config) Options(w io.Writer) (retained.Options, error) {
	theme, err := c.ThemeColors()
	if err != nil {
		return retained.Options{}, err
	}
	logger, err := c.NewLogger(w)
	if err != nil {
		return retained.Options{}, err
	}

	opts := retained.Options{
		Geometry: retained.FixedGeometry{W: c.Display.Width, H: c.Display.Height},
		Logger:   logger,
		Theme:    theme,
	}
	if c.Memory.Budget > 0 {
		opts.Allocator = retained.NewBudget(c.Memory.Budget)
	}
	return opts, nil
}

// NewLogger returns a slog logger writing to w in the configured format.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
