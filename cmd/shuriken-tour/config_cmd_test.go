package main

import (
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/shuriken-cli/tour/internal/config"
)

// The config template written by `config init` must stay parseable and
// produce a valid configuration.
func TestDefaultConfigContent(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	if err := toml.Unmarshal([]byte(defaultConfigContent()), &cfg); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if cfg.Serve.Addr != config.DefaultAddr {
		t.Errorf("template addr = %q, want %q", cfg.Serve.Addr, config.DefaultAddr)
	}
	if cfg.Prompt != config.DefaultPrompt {
		t.Errorf("template prompt = %q, want %q", cfg.Prompt, config.DefaultPrompt)
	}
}
