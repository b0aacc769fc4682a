// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling so the playground
// and the static output components stay visually consistent.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent highlights active elements like the prompt (pink)
	Accent = lipgloss.Color("212")

	// Success is used for positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for error lines (red)
	Error = lipgloss.Color("196")

	// Muted is used for hints and inactive text (gray)
	Muted = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal = lipgloss.Color("252")

	// Info is used for informational lines (gray)
	Info = lipgloss.Color("244")
)

// Common styles
var (
	// TitleStyle renders the playground banner title
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// PromptStyle renders the prompt label in front of the input line
	PromptStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// InputStyle renders transcript lines echoing user input
	InputStyle = lipgloss.NewStyle().Foreground(Normal).Bold(true)

	// OutputStyle renders canned command output
	OutputStyle = lipgloss.NewStyle().Foreground(Normal)

	// ErrorStyle renders unrecognized-command lines
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// InfoStyle renders informational transcript lines
	InfoStyle = lipgloss.NewStyle().Foreground(Info).Italic(true)

	// HintStyle renders the help footer
	HintStyle = lipgloss.NewStyle().Foreground(Muted)

	// HeaderStyle renders table headers and section titles
	HeaderStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
)

// Frame styles
var (
	// PaneBorder frames the transcript pane
	PaneBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)
