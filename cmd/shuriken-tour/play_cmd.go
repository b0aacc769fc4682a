package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shuriken-cli/tour/internal/config"
	"github.com/shuriken-cli/tour/internal/terminal"
)

func newPlayCmd() *cobra.Command {
	var delayMS int

	cmd := &cobra.Command{
		Use:     "play",
		Short:   "Run the interactive Shuriken playground",
		GroupID: GroupTour,
		Args:    cobra.NoArgs,
		Long: `Run the interactive Shuriken playground.

A scripted terminal: type a command, watch its canned output replay
word by word. Type "help" inside the playground to list commands.

Key bindings:
  enter      run the typed command
  up/down    recall command history
  tab        complete a command name
  ctrl+y     copy the transcript to the clipboard
  esc        quit`,
		Example: `  shuriken-tour play            # Start the playground
  shuriken-tour play --delay 20 # Faster output reveal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("the playground needs an interactive terminal")
			}

			cfg := config.FromContext(cmd.Context())

			opts := []terminal.Option{terminal.WithPrompt(cfg.Prompt)}

			delay := cfg.TypingDelayMS
			if cmd.Flags().Changed("delay") {
				delay = delayMS
			}
			if delay > 0 {
				opts = append(opts, terminal.WithDelayOverride(time.Duration(delay)*time.Millisecond))
			}

			return terminal.Run(terminal.NewModel(terminal.DefaultScript(), opts...))
		},
	}

	cmd.Flags().IntVar(&delayMS, "delay", 0, "Word reveal delay in milliseconds (0 = per-command default)")

	return cmd
}
