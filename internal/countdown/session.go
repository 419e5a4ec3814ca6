// Package countdown implements the timer session state machine. It has
// no I/O; front ends drive it with ticks and key events and render the
// resulting state.
package countdown

import "time"

// TickPeriod is the fixed wall-clock interval between countdown
// advances. Countdown precision is tick-count based: one tick always
// subtracts exactly one period, and missed ticks are never batched.
const TickPeriod = time.Second

// State identifies where a session is in its lifecycle.
type State int

const (
	// Running counts down on every tick.
	Running State = iota
	// Paused holds the remaining time across ticks.
	Paused
	// Finished means the countdown reached zero or the input source
	// closed. Terminal.
	Finished
	// StoppedByUser means a quit key or interrupt ended the session
	// early. Terminal.
	StoppedByUser
)

// String returns the lowercase state name for logs and display.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case StoppedByUser:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session tracks a single countdown from a parsed duration. Created
// once at startup, mutated in place by the event loop, discarded on
// exit. Not safe for concurrent use; the single-threaded event loop is
// the only mutator.
type Session struct {
	initial     time.Duration
	remaining   time.Duration
	state       State
	bannerShown bool
}

// New creates a session for the given duration. A zero duration starts
// already finished.
func New(d time.Duration) *Session {
	s := &Session{initial: d, remaining: d, state: Running}
	if d <= 0 {
		s.remaining = 0
		s.state = Finished
	}
	return s
}

// Tick advances the countdown by one period. Running sessions count
// down, clamping at zero and finishing there; paused and terminal
// sessions are unchanged. Returns the resulting state.
func (s *Session) Tick() State {
	if s.state != Running {
		return s.state
	}
	if s.remaining <= TickPeriod {
		s.remaining = 0
		s.state = Finished
		return s.state
	}
	s.remaining -= TickPeriod
	return s.state
}

// TogglePause flips between Running and Paused. Resuming continues
// from the exact frozen remaining time and resets the banner flag so
// the next pause draws it again. Terminal states are unchanged.
func (s *Session) TogglePause() State {
	switch s.state {
	case Running:
		s.state = Paused
	case Paused:
		s.state = Running
		s.bannerShown = false
	}
	return s.state
}

// Stop ends a non-terminal session as StoppedByUser. Quit keys and
// interrupt signals both land here.
func (s *Session) Stop() State {
	if s.state == Running || s.state == Paused {
		s.state = StoppedByUser
	}
	return s.state
}

// Finish ends a non-terminal session as an ordinary completion. Used
// when the input event stream closes.
func (s *Session) Finish() State {
	if s.state == Running || s.state == Paused {
		s.state = Finished
	}
	return s.state
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Remaining returns the time left on the countdown.
func (s *Session) Remaining() time.Duration {
	return s.remaining
}

// Initial returns the duration the session was created with.
func (s *Session) Initial() time.Duration {
	return s.initial
}

// Elapsed returns initial minus remaining.
func (s *Session) Elapsed() time.Duration {
	return s.initial - s.remaining
}

// Done reports whether the session reached a terminal state.
func (s *Session) Done() bool {
	return s.state == Finished || s.state == StoppedByUser
}

// BannerShown reports whether the pause banner is already on screen,
// so paused ticks can skip redundant redraws.
func (s *Session) BannerShown() bool {
	return s.bannerShown
}

// MarkBannerShown records that the pause banner was drawn.
func (s *Session) MarkBannerShown() {
	s.bannerShown = true
}
