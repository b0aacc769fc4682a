package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shuriken-cli/tour/internal/config"
	"github.com/shuriken-cli/tour/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage shuriken-tour configuration.

Config file: ~/.config/shuriken-tour/config.toml`,
		Example: `  shuriken-tour config init   # Create default config
  shuriken-tour config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  shuriken-tour config init      # Create config if missing
  shuriken-tour config init -f   # Overwrite existing config
  shuriken-tour config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := defaultConfigContent()

			if stdout {
				fmt.Print(content)
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
				}
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}

			fmt.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  shuriken-tour config show         # Show config in text format
  shuriken-tour config show --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			path, err := config.Path()
			if err == nil {
				out.Printf("Config file: %s\n\n", path)
			}
			out.Printf("theme: %s\n", cfg.Theme)
			out.Printf("typing_delay_ms: %d\n", cfg.TypingDelayMS)
			out.Printf("prompt: %s\n", cfg.Prompt)
			out.Printf("serve.addr: %s\n", cfg.Serve.Addr)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// defaultConfigContent returns the default configuration file content.
func defaultConfigContent() string {
	return `# shuriken-tour configuration
# Config location: ~/.config/shuriken-tour/config.toml

# Rendering theme for documentation pages
# "auto" = detect terminal background, or "dark", "light", "notty"
theme = "auto"

# Global override for the playground's word reveal delay in milliseconds
# 0 keeps each command's own delay
typing_delay_ms = 0

# Prompt label shown in the playground input line
prompt = "shuriken"

# Documentation HTTP server
[serve]
addr = ":8420"
`
}
