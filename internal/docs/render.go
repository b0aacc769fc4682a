package docs

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the word-wrap width used when no width is given.
const DefaultWrap = 100

// Render renders a page's markdown for the terminal. Theme is one of "auto",
// "dark", "light" or "notty"; "auto" detects the terminal background.
func Render(p Page, theme string, width int) (string, error) {
	md, err := p.Markdown()
	if err != nil {
		return "", err
	}
	if width <= 0 {
		width = DefaultWrap
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch theme {
	case "dark", "light", "notty":
		opts = append(opts, glamour.WithStandardStyle(theme))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render page %s: %w", p.Slug, err)
	}
	return out, nil
}
