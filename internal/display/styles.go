package display

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("179")
	dimColor    = lipgloss.Color("243")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	bannerStyle = lipgloss.NewStyle().Italic(true).Foreground(dimColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().Foreground(dimColor).Width(7)

	fileStyle = lipgloss.NewStyle().Foreground(dimColor)

	headlineStyle = lipgloss.NewStyle().Bold(true)

	diagnosticStyle = lipgloss.NewStyle().Foreground(dimColor)

	helpStyle = lipgloss.NewStyle().Foreground(dimColor)
)
