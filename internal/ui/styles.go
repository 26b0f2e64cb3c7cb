// Package ui holds the lipgloss styles for promptkit's terminal output.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Colors
	ColorAccent  = lipgloss.Color("75")  // blue for numbers
	ColorMuted   = lipgloss.Color("241") // gray for labels
	ColorSuccess = lipgloss.Color("42")  // green for model names
	ColorWarning = lipgloss.Color("214") // orange for degraded results
	ColorError   = lipgloss.Color("160") // red for failures

	// Base styles
	StyleHeader  = lipgloss.NewStyle().Bold(true)
	StyleLabel   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleModel   = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	// Chunk listing
	StyleChunkHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleChunkMeta   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// DisableColor forces plain output regardless of terminal support.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// KV renders a "label: value" line with the standard styles.
func KV(label, value string) string {
	return StyleLabel.Render(label+":") + " " + StyleValue.Render(value)
}
