package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// NewMarkdownRenderer returns a payload renderer that formats story text as
// markdown for the terminal, auto-detecting light/dark backgrounds.
// Rendering failures fall back to the trimmed raw text.
func NewMarkdownRenderer() func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(text string) string {
		if err != nil || r == nil {
			return strings.TrimSpace(text)
		}
		rendered, renderErr := r.Render(text)
		if renderErr != nil {
			return strings.TrimSpace(text)
		}
		return strings.TrimSpace(rendered)
	}
}
