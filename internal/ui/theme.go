package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles shared by the CLI commands.
var (
	Heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF75B5"))
	Key     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	Good    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	Bad     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	Gold    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}
