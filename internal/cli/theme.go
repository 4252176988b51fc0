package cli

import (
	"github.com/askewbot/askew-trainer/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// askewHuhTheme returns a huh theme using the formatter palette.
func askewHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorAccent).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorText).Background(formatter.ColorAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorMuted).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorText)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorMuted)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorMuted)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorMuted)

	return t
}
