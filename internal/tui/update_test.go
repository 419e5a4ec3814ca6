package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanikVitek/timer-cli/internal/countdown"
)

func newTestModel(d time.Duration) model {
	return newModel(countdown.New(d), nil, nil, nil, true)
}

func TestHandleKey_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quitCalled := false
			session := countdown.New(10 * time.Second)
			m := newModel(session, nil, nil, func() { quitCalled = true }, true)

			_, cmd := m.handleKey(tt.msg)

			if !quitCalled {
				t.Error("onQuit callback should be called")
			}
			if cmd == nil {
				t.Error("should return tea.Quit command")
			}
			if session.State() != countdown.StoppedByUser {
				t.Errorf("state = %v, want StoppedByUser", session.State())
			}
		})
	}
}

func TestHandleKey_PauseToggle(t *testing.T) {
	pauseCalled := false
	resumeCalled := false
	session := countdown.New(10 * time.Second)
	m := newModel(session,
		func() { pauseCalled = true },
		func() { resumeCalled = true },
		nil, true)

	pKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}

	_, cmd := m.handleKey(pKey)
	if cmd != nil {
		t.Error("pause should return nil command")
	}
	if !pauseCalled {
		t.Error("onPause callback should be called")
	}
	if session.State() != countdown.Paused {
		t.Errorf("state = %v, want Paused", session.State())
	}

	_, _ = m.handleKey(pKey)
	if !resumeCalled {
		t.Error("onResume callback should be called")
	}
	if session.State() != countdown.Running {
		t.Errorf("state = %v, want Running", session.State())
	}
	if session.Remaining() != 10*time.Second {
		t.Errorf("remaining = %v, want unchanged 10s", session.Remaining())
	}
}

func TestHandleKey_SpaceTogglesPause(t *testing.T) {
	session := countdown.New(10 * time.Second)
	m := newModel(session, nil, nil, nil, true)

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeySpace})

	if session.State() != countdown.Paused {
		t.Errorf("state = %v, want Paused", session.State())
	}
}

func TestHandleKey_IgnoresOtherKeys(t *testing.T) {
	session := countdown.New(10 * time.Second)
	m := newModel(session, nil, nil, nil, true)

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	if cmd != nil {
		t.Error("unknown key should return nil command")
	}
	if session.State() != countdown.Running {
		t.Errorf("state = %v, want Running", session.State())
	}
}

func TestHandleTick_Decrements(t *testing.T) {
	session := countdown.New(5 * time.Second)
	m := newModel(session, nil, nil, nil, true)

	_, cmd := m.handleTick()

	if session.Remaining() != 4*time.Second {
		t.Errorf("remaining = %v, want 4s", session.Remaining())
	}
	if cmd == nil {
		t.Error("should schedule the next tick")
	}
}

func TestHandleTick_QuitsWhenFinished(t *testing.T) {
	session := countdown.New(time.Second)
	m := newModel(session, nil, nil, nil, true)

	_, cmd := m.handleTick()

	if session.State() != countdown.Finished {
		t.Errorf("state = %v, want Finished", session.State())
	}
	if cmd == nil {
		t.Fatal("should return tea.Quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("command produced %T, want tea.QuitMsg", msg)
	}
}

func TestHandleTick_PausedDoesNotDecrement(t *testing.T) {
	session := countdown.New(10 * time.Second)
	session.TogglePause()
	m := newModel(session, nil, nil, nil, true)

	_, cmd := m.handleTick()

	if session.Remaining() != 10*time.Second {
		t.Errorf("remaining = %v, want frozen 10s", session.Remaining())
	}
	if cmd == nil {
		t.Error("paused ticks should keep the tick loop alive")
	}
	if !session.BannerShown() {
		t.Error("first paused tick should mark the banner shown")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(10 * time.Second)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	um := updated.(model)
	if um.width != 100 || um.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", um.width, um.height)
	}
	if um.progress.Width != um.contentWidth() {
		t.Errorf("progress width = %d, want %d", um.progress.Width, um.contentWidth())
	}
}

func TestInit_ZeroDurationQuitsImmediately(t *testing.T) {
	m := newTestModel(0)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should return a command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("command produced %T, want tea.QuitMsg", msg)
	}
}

func TestElapsedFraction(t *testing.T) {
	session := countdown.New(4 * time.Second)
	m := newModel(session, nil, nil, nil, true)

	if f := m.elapsedFraction(); f != 0 {
		t.Errorf("fraction = %v, want 0", f)
	}

	session.Tick()
	if f := m.elapsedFraction(); f != 0.25 {
		t.Errorf("fraction = %v, want 0.25", f)
	}
}
