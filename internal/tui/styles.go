package tui

import "github.com/charmbracelet/lipgloss"

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// accentColor maps the profile theme to the highlight color used across tabs
// and the week cursor.
func accentColor(theme string) lipgloss.Color {
	switch theme {
	case "male":
		return lipgloss.Color("39") // blue
	case "female":
		return lipgloss.Color("205") // pink
	default:
		return lipgloss.Color("141") // violet
	}
}

func tabStyles(accent lipgloss.Color) (active, inactive lipgloss.Style) {
	active = lipgloss.NewStyle().
		Foreground(accent).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		Bold(true)
	inactive = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Padding(0, 1)
	return active, inactive
}

var dangerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)
