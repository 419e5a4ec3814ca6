package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanikVitek/timer-cli/internal/countdown"
)

// Layout size constants.
const (
	// minWidth is the narrowest terminal the full layout renders in.
	minWidth = 34
	// minHeight is the shortest terminal the full layout renders in.
	minHeight = 9
	// maxContentWidth caps the inner content width on wide terminals.
	maxContentWidth = 60
)

// model is the bubbletea model for the countdown display.
type model struct {
	session *countdown.Session

	// UI state
	width    int
	height   int
	progress progress.Model

	showProgress bool

	// Callbacks
	onPause  func()
	onResume func()
	onQuit   func()
}

// newModel creates a model around an existing session.
func newModel(
	session *countdown.Session,
	onPause, onResume, onQuit func(),
	showProgress bool,
) model {
	return model{
		session:      session,
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		showProgress: showProgress,
		onPause:      onPause,
		onResume:     onResume,
		onQuit:       onQuit,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	if m.session.Done() {
		// Zero-duration countdowns quit immediately.
		return tea.Quit
	}
	return doTick()
}

// Update, handleKey, handleTick are implemented in update.go
// View is implemented in view.go

// contentWidth returns the inner width available for rendering.
func (m model) contentWidth() int {
	w := m.width - 4 // container borders and padding
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}

// elapsedFraction returns how much of the countdown has passed, in
// [0, 1], for the progress bar.
func (m model) elapsedFraction() float64 {
	initial := m.session.Initial()
	if initial <= 0 {
		return 1
	}
	return float64(m.session.Elapsed()) / float64(initial)
}
