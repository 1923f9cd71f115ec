package cli

import "github.com/charmbracelet/lipgloss"

// Output styles for progress and summary rendering.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)
