package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette, Gruvbox dark.
var (
	ColorAccent  = lipgloss.Color("#fe8019")
	ColorText    = lipgloss.Color("#ebdbb2")
	ColorMuted   = lipgloss.Color("#928374")
	ColorOK      = lipgloss.Color("#b8bb26")
	ColorCaution = lipgloss.Color("#fabd2f")
	ColorFail    = lipgloss.Color("#fb4934")
	ColorNote    = lipgloss.Color("#83a598")
	ColorGemini  = lipgloss.Color("#d3869b")
)

var (
	StyleAccent  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleStrong  = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleOK      = lipgloss.NewStyle().Foreground(ColorOK)
	StyleCaution = lipgloss.NewStyle().Foreground(ColorCaution)
	StyleFail    = lipgloss.NewStyle().Foreground(ColorFail)
	StyleNote    = lipgloss.NewStyle().Foreground(ColorNote)
	StyleGemini  = lipgloss.NewStyle().Foreground(ColorGemini)
)

// Header renders text upper-cased in the accent color over a muted rule.
func Header(text string) string {
	title := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(title))
	return fmt.Sprintf("%s\n%s", StyleAccent.Render(title), StyleMuted.Render(rule))
}

func Dim(text string) string  { return StyleMuted.Render(text) }
func Bold(text string) string { return StyleStrong.Render(text) }

// Status markers prefix every progress line the trainer prints.
func Info(text string) string    { return marker(StyleNote, "*") + text }
func Success(text string) string { return marker(StyleOK, "+") + text }
func Warn(text string) string    { return marker(StyleCaution, "!") + text }
func Aborted(text string) string { return marker(StyleFail, "-") + text }
func Done(text string) string    { return marker(StyleOK, "✓") + text }

func marker(style lipgloss.Style, sym string) string {
	return style.Render("["+sym+"]") + " "
}
