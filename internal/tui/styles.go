package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("77"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	selectedCellStyle = lipgloss.NewStyle().
				Reverse(true)

	assignedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("77")).
			Bold(true)

	unassignedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	subItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	totalStyle = lipgloss.NewStyle().
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginTop(1)
)
