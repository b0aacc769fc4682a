// Package config handles loading and validation of shuriken-tour configuration.
//
// Configuration is read from ~/.config/shuriken-tour/config.toml with
// environment variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - SHURIKEN_TOUR_THEME env var: documentation rendering theme
//   - SHURIKEN_TOUR_ADDR env var: listen address for `serve`
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - theme: "auto" (detect background), "dark", "light" or "notty" (no color)
//   - typing_delay_ms: global override for the playground's word reveal delay
//     (0 keeps each command's own delay)
//   - prompt: prompt label shown in the playground input line
//
// # Serve Settings
//
// The [serve] section configures the documentation HTTP server:
//
//	[serve]
//	addr = ":8420"
package config
