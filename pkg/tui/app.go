package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is Michigan maize.
const DefaultAccent = "#FFCB05"

var (
	accentColor = DefaultAccent

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// SetAccent changes the color used by GetTheme and the accent styles.
// An empty color restores the default.
func SetAccent(color string) {
	if color == "" {
		color = DefaultAccent
	}
	accentColor = color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Error renders s in the error style.
func Error(s string) string {
	return errorStyle.Render(s)
}

// GetTheme builds the form theme from the configured accent color.
func GetTheme() *huh.Theme {
	return GetCustomTheme(accentColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
// This is used for live-previewing styles before they are officially saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.UnselectedPrefix = t.Focused.UnselectedPrefix.Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "235"})
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}
