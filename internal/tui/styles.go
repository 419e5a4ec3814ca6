package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the countdown display.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Divider   lipgloss.Style

	// Header styles
	Title lipgloss.Style

	// Countdown styles
	Remaining lipgloss.Style

	// Pause banner styles
	PausedBanner lipgloss.Style
	PausedHelp   lipgloss.Style

	// Footer style
	Footer lipgloss.Style

	// State colors
	StatusRunning lipgloss.Style
	StatusPaused  lipgloss.Style
	StatusStopped lipgloss.Style
	StatusDone    lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Remaining: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),

	PausedBanner: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214")),

	PausedHelp: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	StatusRunning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	StatusPaused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),

	StatusStopped: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	StatusDone: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),
}
