package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used for command output.

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Gray

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")) // Purple-ish
)

// Success renders a success status line.
func Success(msg string) string { return successStyle.Render("✔ " + msg) }

// Warn renders a warning status line.
func Warn(msg string) string { return warnStyle.Render("! " + msg) }

// Error renders an error status line.
func Error(msg string) string { return errorStyle.Render("✘ " + msg) }

// Muted renders secondary text.
func Muted(msg string) string { return mutedStyle.Render(msg) }
