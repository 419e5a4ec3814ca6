package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanikVitek/timer-cli/internal/countdown"
	"github.com/DanikVitek/timer-cli/internal/duration"
)

// View implements tea.Model. This renders the full countdown display.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		return m.renderTooSmall()
	}

	w := m.contentWidth()

	var sections []string
	sections = append(sections, m.renderHeader(w))
	sections = append(sections, m.renderDivider(w))
	sections = append(sections, m.renderRemaining(w))
	if m.showProgress {
		sections = append(sections, m.renderProgress(w))
	}
	if m.session.State() == countdown.Paused {
		sections = append(sections, m.renderPausedBanner(w))
	}
	sections = append(sections, m.renderDivider(w))
	sections = append(sections, m.renderFooter())

	content := strings.Join(sections, "\n")

	rendered := styles.Container.
		Width(w + 2).
		Render(content)

	// Center the container in the terminal.
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, rendered)
}

// renderHeader renders the title line with the state indicator.
func (m model) renderHeader(w int) string {
	title := styles.Title.Render("timer")
	status := m.renderStatus()

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(1, w-lipgloss.Width(title)-lipgloss.Width(status))),
		status,
	)
}

// renderStatus renders the state indicator with appropriate styling.
func (m model) renderStatus() string {
	state := m.session.State()
	text := strings.ToUpper(state.String())

	switch state {
	case countdown.Running:
		return styles.StatusRunning.Render(text)
	case countdown.Paused:
		return styles.StatusPaused.Render(text)
	case countdown.StoppedByUser:
		return styles.StatusStopped.Render(text)
	default:
		return styles.StatusDone.Render(text)
	}
}

// renderRemaining renders the remaining-time line.
func (m model) renderRemaining(w int) string {
	line := fmt.Sprintf("Remaining time: %s", duration.Format(m.session.Remaining()))
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, styles.Remaining.Render(line))
}

// renderProgress renders the elapsed-fraction bar.
func (m model) renderProgress(w int) string {
	bar := m.progress.ViewAs(m.elapsedFraction())
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, bar)
}

// renderPausedBanner renders the two-line pause banner: status line
// plus help line.
func (m model) renderPausedBanner(w int) string {
	banner := lipgloss.PlaceHorizontal(w, lipgloss.Center, styles.PausedBanner.Render("PAUSED"))
	help := lipgloss.PlaceHorizontal(w, lipgloss.Center, styles.PausedHelp.Render("press p or space to resume"))
	return banner + "\n" + help
}

// renderDivider renders a horizontal divider line.
func (m model) renderDivider(w int) string {
	return styles.Divider.Render(strings.Repeat("─", w))
}

// renderFooter renders keyboard shortcuts help text.
func (m model) renderFooter() string {
	var help string
	switch m.session.State() {
	case countdown.Paused:
		help = "p: resume  q: quit"
	default:
		help = "p: pause  q: quit"
	}
	return styles.Footer.Render(help)
}

// renderTooSmall renders a minimal fallback for tiny terminals.
func (m model) renderTooSmall() string {
	return fmt.Sprintf("Remaining time: %s", duration.Format(m.session.Remaining()))
}
