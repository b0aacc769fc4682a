// Package static provides non-interactive terminal output components.
//
// These render formatted output that requires no user interaction, such as
// the documentation page index table.
package static

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/shuriken-cli/tour/internal/ui/styles"
)

// RenderTable renders a borderless table with aligned columns, ending in a
// newline. The first column is highlighted since it carries the value the
// reader will type back (a page slug, a command name). Empty input renders
// nothing.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cell := lipgloss.NewStyle().PaddingRight(2)

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.HeaderStyle.PaddingRight(2)
			case col == 0:
				return styles.PromptStyle.PaddingRight(2)
			default:
				return cell
			}
		})

	return t.String() + "\n"
}
