package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ServeConfig holds settings for the documentation HTTP server.
type ServeConfig struct {
	Addr string `toml:"addr"` // listen address, e.g. ":8420"
}

// Config holds the shuriken-tour configuration.
type Config struct {
	Theme         string      `toml:"theme"`           // "auto", "dark", "light" or "notty"
	TypingDelayMS int         `toml:"typing_delay_ms"` // 0 = use each command's own reveal delay
	Prompt        string      `toml:"prompt"`          // prompt label in the playground
	Serve         ServeConfig `toml:"serve"`
}

// DefaultAddr is the default listen address for `shuriken-tour serve`.
const DefaultAddr = ":8420"

// DefaultPrompt is the prompt label shown in the playground input line.
const DefaultPrompt = "shuriken"

// Default returns the default configuration.
func Default() Config {
	return Config{
		Theme:  "auto",
		Prompt: DefaultPrompt,
		Serve:  ServeConfig{Addr: DefaultAddr},
	}
}

// validThemes are the accepted values for the theme setting.
var validThemes = map[string]bool{
	"auto":  true,
	"dark":  true,
	"light": true,
	"notty": true,
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("theme must be one of auto, dark, light, notty, got: %q", c.Theme)
	}
	if c.TypingDelayMS < 0 {
		return fmt.Errorf("typing_delay_ms must not be negative, got: %d", c.TypingDelayMS)
	}
	return nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shuriken-tour", "config.toml"), nil
}

// Load reads the configuration from the config file, applying environment
// variable overrides (SHURIKEN_TOUR_THEME, SHURIKEN_TOUR_ADDR).
// A missing config file is not an error; defaults are returned.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from the given path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file: defaults plus env overrides.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if theme := os.Getenv("SHURIKEN_TOUR_THEME"); theme != "" {
		cfg.Theme = theme
	}
	if addr := os.Getenv("SHURIKEN_TOUR_ADDR"); addr != "" {
		cfg.Serve.Addr = addr
	}
}

type ctxKey struct{}

// WithConfig attaches the configuration to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the configuration from context.
// Returns the default configuration if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	def := Default()
	return &def
}
