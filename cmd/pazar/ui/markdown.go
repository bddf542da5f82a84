package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// newMarkdownRenderer builds a glamour renderer matching the theme. A nil
// renderer makes safeRenderMarkdown fall back to the raw text.
func newMarkdownRenderer(theme Theme, wrap int) *glamour.TermRenderer {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// safeRenderMarkdown renders markdown with panic recovery
func safeRenderMarkdown(r *glamour.TermRenderer, content string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			// If glamour panics, return plain text
			result = content
		}
	}()

	if r != nil && content != "" {
		rendered, err := r.Render(content)
		if err == nil {
			return strings.Trim(rendered, "\n")
		}
	}
	return content
}

// RenderMarkdown renders markdown for non-interactive output.
func RenderMarkdown(theme Theme, wrap int, content string) string {
	return safeRenderMarkdown(newMarkdownRenderer(theme, wrap), content)
}
