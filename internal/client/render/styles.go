package render

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	cellStyle = lipgloss.NewStyle()

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)
