package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87")
	errorColor     = lipgloss.Color("#AF5F5F")
	warnColor      = lipgloss.Color("#D7AF5F")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	focusedColumnStyle = columnStyle.
				BorderForeground(primaryColor)

	cardStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	selectedCardStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(primaryColor)

	draggedCardStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Strikethrough(true).
				PaddingLeft(1)

	dropTargetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	priorityStyles = map[string]lipgloss.Style{
		"low":    subtleStyle,
		"medium": lipgloss.NewStyle().Foreground(primaryColor),
		"high":   lipgloss.NewStyle().Foreground(warnColor),
		"urgent": lipgloss.NewStyle().Bold(true).Foreground(errorColor),
	}
)
