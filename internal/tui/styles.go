package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle     = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	resultKeyStyle    = lipgloss.NewStyle().Bold(true)
	resultStringStyle = lipgloss.NewStyle()
	resultNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	resultBoolStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	resultNullStyle   = lipgloss.NewStyle().Faint(true)
)
