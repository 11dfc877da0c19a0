package report

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#874BFD")
	colorSuccess = lipgloss.Color("#00FF99")
	colorDanger  = lipgloss.Color("#FF0055")
	colorSubtle  = lipgloss.Color("#64748B")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	subtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtle).Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1).
			MarginRight(1)
)
