package bubbletea

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders a markdown document for a terminal of the given width.
type MarkdownRenderer func(markdown string, width int) (string, error)

// PlainMarkdown returns the markdown source unchanged.
func PlainMarkdown(markdown string, _ int) (string, error) {
	return markdown, nil
}

// GlamourMarkdown returns a MarkdownRenderer using one of glamour's standard
// styles, such as "dark", "light" or "notty".
func GlamourMarkdown(style string) MarkdownRenderer {
	return func(markdown string, width int) (string, error) {
		opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
		if width > 4 {
			opts = append(opts, glamour.WithWordWrap(width-4))
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", err
		}
		return r.Render(markdown)
	}
}
