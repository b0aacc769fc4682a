// Package docs holds the Shuriken CLI documentation pages and renders them
// for the terminal.
//
// Pages are markdown files embedded at build time. The registry is an
// ordered list so indexes and navigation follow the intended reading order.
package docs

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed content/*.md
var content embed.FS

// ErrNotFound is returned when no page exists for a slug.
var ErrNotFound = errors.New("page not found")

// Page is one documentation page.
type Page struct {
	Slug    string
	Title   string
	Summary string
	file    string
}

// pages is the registry in reading order.
var pages = []Page{
	{
		Slug:    "overview",
		Title:   "Overview",
		Summary: "What Shuriken CLI is and how the pieces fit together",
		file:    "content/overview.md",
	},
	{
		Slug:    "getting-started",
		Title:   "Getting Started",
		Summary: "Scaffold an application and run your first command",
		file:    "content/getting-started.md",
	},
	{
		Slug:    "packages",
		Title:   "Packages",
		Summary: "Feature modules, discovery and the dependency container",
		file:    "content/packages.md",
	},
	{
		Slug:    "commands",
		Title:   "Commands",
		Summary: "How commands are declared, grouped and dispatched",
		file:    "content/commands.md",
	},
	{
		Slug:    "migrations",
		Title:   "Migrations",
		Summary: "The migration ledger and the migration runner",
		file:    "content/migrations.md",
	},
	{
		Slug:    "ui-kit",
		Title:   "UI Kit",
		Summary: "Prompts, tables and spinners for your own commands",
		file:    "content/ui-kit.md",
	},
}

// Pages returns all pages in reading order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Lookup finds a page by slug.
func Lookup(slug string) (Page, error) {
	for _, p := range pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%q: %w", slug, ErrNotFound)
}

// Markdown returns the page's raw markdown source.
func (p Page) Markdown() (string, error) {
	data, err := content.ReadFile(p.file)
	if err != nil {
		return "", fmt.Errorf("read page %s: %w", p.Slug, err)
	}
	return string(data), nil
}
