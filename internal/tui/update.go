package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanikVitek/timer-cli/internal/countdown"
)

// tickMsg signals one countdown advance.
type tickMsg time.Time

// doTick schedules the next countdown tick one period out. Scheduling
// after handling (rather than on a free-running ticker) means a stalled
// render delays the next tick instead of batching decrements.
func doTick() tea.Cmd {
	return tea.Tick(countdown.TickPeriod, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model. bubbletea delivers one message at a
// time, so a simultaneously ready tick and key press are handled in
// queue order with neither dropped.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = m.contentWidth()
		return m, nil

	case tickMsg:
		return m.handleTick()

	default:
		return m, nil
	}
}

// handleKey processes keyboard input.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.session.Stop()
		if m.onQuit != nil {
			m.onQuit()
		}
		return m, tea.Quit

	case "p", " ":
		switch m.session.TogglePause() {
		case countdown.Paused:
			if m.onPause != nil {
				m.onPause()
			}
		case countdown.Running:
			if m.onResume != nil {
				m.onResume()
			}
		}
		return m, nil

	default:
		return m, nil
	}
}

// handleTick advances the countdown and schedules the next tick. Ticks
// keep arriving while paused so the display stays live; the session
// ignores them.
func (m model) handleTick() (tea.Model, tea.Cmd) {
	switch m.session.Tick() {
	case countdown.Finished:
		return m, tea.Quit

	case countdown.Paused:
		if !m.session.BannerShown() {
			m.session.MarkBannerShown()
			slog.Debug("pause banner drawn", "remaining", m.session.Remaining())
		}
	}

	return m, doTick()
}
