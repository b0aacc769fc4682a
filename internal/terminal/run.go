package terminal

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// Run starts the playground in its own Bubble Tea program and blocks until
// the user quits. The color profile is detected up front so styles degrade
// on terminals without full color support (and honor NO_COLOR).
func Run(m Model) error {
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	p := tea.NewProgram(m, tea.WithColorProfile(profile))
	_, err := p.Run()
	return err
}
