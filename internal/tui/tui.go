// Package tui provides the interactive countdown display using bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanikVitek/timer-cli/internal/countdown"
	"github.com/DanikVitek/timer-cli/internal/herrors"
)

// TUI is the full-screen front end for a countdown session.
type TUI struct {
	session      *countdown.Session
	showProgress bool
	onPause      func()
	onResume     func()
	onQuit       func()
}

// Option configures the TUI.
type Option func(*TUI)

// New creates a TUI driving the given session.
func New(session *countdown.Session, opts ...Option) *TUI {
	t := &TUI{
		session:      session,
		showProgress: true,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithOnPause sets the callback invoked when the countdown is paused.
func WithOnPause(fn func()) Option {
	return func(t *TUI) {
		t.onPause = fn
	}
}

// WithOnResume sets the callback invoked when the countdown resumes.
func WithOnResume(fn func()) Option {
	return func(t *TUI) {
		t.onResume = fn
	}
}

// WithOnQuit sets the callback invoked when the user quits early.
func WithOnQuit(fn func()) Option {
	return func(t *TUI) {
		t.onQuit = fn
	}
}

// WithProgressBar enables or disables the elapsed-fraction bar.
func WithProgressBar(enabled bool) Option {
	return func(t *TUI) {
		t.showProgress = enabled
	}
}

// Outcome describes how a countdown ended, captured after the
// alternate screen was restored.
type Outcome struct {
	State     countdown.State
	Remaining time.Duration
	Elapsed   time.Duration
}

// Run starts the TUI in the alternate screen and blocks until the
// countdown finishes or the user quits. Terminal failures come back as
// system errors; they are fatal and unretried.
func (t *TUI) Run() (Outcome, error) {
	m := newModel(t.session, t.onPause, t.onResume, t.onQuit, t.showProgress)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return Outcome{}, herrors.SystemWithCause(
			"Failed to run the terminal UI",
			"Try notifying the developer",
			err)
	}

	return Outcome{
		State:     t.session.State(),
		Remaining: t.session.Remaining(),
		Elapsed:   t.session.Elapsed(),
	}, nil
}
