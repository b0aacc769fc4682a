package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shuriken-cli/tour/internal/config"
	"github.com/shuriken-cli/tour/internal/docs"
	"github.com/shuriken-cli/tour/internal/output"
	"github.com/shuriken-cli/tour/internal/ui/static"
)

func newDocsCmd() *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:               "docs [page]",
		Short:             "Read the documentation in your terminal",
		GroupID:           GroupTour,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completePageSlugs,
		Long: `Read the Shuriken CLI documentation in your terminal.

Without arguments, lists all pages. With a page slug, renders that page.
The rendering theme comes from the config (auto, dark, light or notty).`,
		Example: `  shuriken-tour docs             # List all pages
  shuriken-tour docs packages    # Read the package architecture page
  shuriken-tour docs ui-kit --raw  # Print raw markdown for piping`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			cfg := config.FromContext(ctx)

			if len(args) == 0 {
				rows := make([][]string, 0, len(docs.Pages()))
				for _, p := range docs.Pages() {
					rows = append(rows, []string{p.Slug, p.Title, p.Summary})
				}
				out.Print(static.RenderTable([]string{"PAGE", "TITLE", "SUMMARY"}, rows))
				return nil
			}

			page, err := docs.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("%w (run 'shuriken-tour docs' to list pages)", err)
			}

			if raw {
				md, err := page.Markdown()
				if err != nil {
					return err
				}
				out.Print(md)
				return nil
			}

			rendered, err := docs.Render(page, cfg.Theme, width)
			if err != nil {
				return err
			}
			out.Print(rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown without rendering")
	cmd.Flags().IntVar(&width, "width", 0, "Word-wrap width (0 = default)")

	return cmd
}

// completePageSlugs completes page slugs for the docs command.
func completePageSlugs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var slugs []string
	for _, p := range docs.Pages() {
		if strings.HasPrefix(p.Slug, toComplete) {
			slugs = append(slugs, p.Slug+"\t"+p.Summary)
		}
	}
	return slugs, cobra.ShellCompDirectiveNoFileComp
}
