package win

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds file-loadable window defaults. Zero fields fall back to
// the built-in defaults; explicit Options passed alongside a Config win
// over it.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Aspect is a "W:H" ratio ("1:1", "4:3", "16:9"). When set, Width is
	// ignored and derived from Height instead.
	Aspect string `yaml:"aspect"`

	// Resizable defaults to true when absent.
	Resizable *bool `yaml:"resizable"`

	// ScreenshotDir replaces the marker-directory walk as the screenshot
	// output root.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// DefaultConfigPath returns the standard config location,
// $HOME/.config/win/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("win: get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "win", "config.yaml"), nil
}

// LoadConfig reads a Config from the given YAML file. Unknown fields are
// rejected so typos surface instead of silently falling back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("win: read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("win: parse config: %w", err)
	}
	return &cfg, nil
}

// NewWindow creates a window from the config, with opts appended after
// the config-derived options so callers can override individual values.
func (c *Config) NewWindow(opts ...Option) (*Window, error) {
	title := c.Title
	if title == "" {
		title = "win"
	}
	height := c.Height
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimensions, c.Height)
	}

	all := append(c.options(), opts...)

	if c.Aspect != "" {
		aspect, err := ParseAspect(c.Aspect)
		if err != nil {
			return nil, err
		}
		return NewWithAspect(title, height, aspect, all...)
	}
	return New(title, c.Width, height, all...)
}

// options translates the config's optional fields into Options.
func (c *Config) options() []Option {
	var opts []Option
	if c.Resizable != nil {
		opts = append(opts, WithResizable(*c.Resizable))
	}
	if c.ScreenshotDir != "" {
		opts = append(opts, WithScreenshotDir(c.ScreenshotDir))
	}
	return opts
}
