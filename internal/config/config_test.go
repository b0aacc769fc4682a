package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.Serve.Addr != DefaultAddr {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, DefaultAddr)
	}
	if cfg.TypingDelayMS != 0 {
		t.Errorf("TypingDelayMS = %d, want 0", cfg.TypingDelayMS)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFrom failed: %v", err)
		}
		if cfg.Theme != "auto" {
			t.Errorf("Theme = %q, want auto", cfg.Theme)
		}
	})

	t.Run("reads file settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `theme = "dark"
typing_delay_ms = 25
prompt = "dojo"

[serve]
addr = ":9000"
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom failed: %v", err)
		}
		if cfg.Theme != "dark" {
			t.Errorf("Theme = %q, want dark", cfg.Theme)
		}
		if cfg.TypingDelayMS != 25 {
			t.Errorf("TypingDelayMS = %d, want 25", cfg.TypingDelayMS)
		}
		if cfg.Prompt != "dojo" {
			t.Errorf("Prompt = %q, want dojo", cfg.Prompt)
		}
		if cfg.Serve.Addr != ":9000" {
			t.Errorf("Serve.Addr = %q, want :9000", cfg.Serve.Addr)
		}
	})

	t.Run("invalid theme is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(`theme = "solarized"`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("expected error for unknown theme")
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(`theme = "light"`), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("SHURIKEN_TOUR_THEME", "notty")
		t.Setenv("SHURIKEN_TOUR_ADDR", ":7777")

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom failed: %v", err)
		}
		if cfg.Theme != "notty" {
			t.Errorf("Theme = %q, want notty (env override)", cfg.Theme)
		}
		if cfg.Serve.Addr != ":7777" {
			t.Errorf("Serve.Addr = %q, want :7777 (env override)", cfg.Serve.Addr)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.TypingDelayMS = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative typing_delay_ms")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Prompt = "dojo"
		ctx := WithConfig(context.Background(), &cfg)
		if got := FromContext(ctx); got.Prompt != "dojo" {
			t.Errorf("Prompt = %q, want dojo", got.Prompt)
		}
	})

	t.Run("defaults when not attached", func(t *testing.T) {
		t.Parallel()
		got := FromContext(context.Background())
		if got.Theme != "auto" {
			t.Errorf("Theme = %q, want auto", got.Theme)
		}
	})
}
