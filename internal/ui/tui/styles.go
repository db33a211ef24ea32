package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

const (
	boxChecked    = "☑"
	boxInProgress = "◐"
	boxUnchecked  = "☐"
)

func statusBox(s domain.ItemStatus) string {
	switch s {
	case domain.ItemStatusDone:
		return successStyle.Render(boxChecked)
	case domain.ItemStatusInProgress:
		return pendingStyle.Render(boxInProgress)
	}
	return mutedStyle.Render(boxUnchecked)
}
