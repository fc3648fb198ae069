package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Glamour standard style names.
const (
	styleDark  = "dark"
	styleLight = "light"
	styleNoTTY = "notty"
)

// PreviewStyle picks a glamour style for the current terminal.
func PreviewStyle(tty bool) string {
	if !tty {
		return styleNoTTY
	}
	if termenv.HasDarkBackground() {
		return styleDark
	}
	return styleLight
}

// Preview renders a markdown table for the terminal.
func Preview(table string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(table)
	if err != nil {
		return "", fmt.Errorf("failed to render table: %w", err)
	}
	return out, nil
}
