// Package tui provides the interactive terminal wizard for the CV and
// cover-letter builders.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	stepActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	savedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	savingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)
