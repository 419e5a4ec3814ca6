// Package plain implements the non-interactive front end: one
// remaining-time line per tick, no alternate screen, no raw mode. Used
// when stdout is not a terminal or --plain is given.
package plain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/DanikVitek/timer-cli/internal/countdown"
	"github.com/DanikVitek/timer-cli/internal/duration"
	"github.com/DanikVitek/timer-cli/internal/herrors"
)

// Runner drives a countdown session on a plain text stream.
type Runner struct {
	session *countdown.Session
	out     io.Writer
	logger  *slog.Logger
	period  time.Duration
}

// New creates a Runner printing to out.
func New(session *countdown.Session, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		session: session,
		out:     out,
		logger:  logger,
		period:  countdown.TickPeriod,
	}
}

// Run prints the remaining time once per tick until the countdown
// finishes or ctx is canceled. Cancellation (the interrupt path) stops
// the session and returns ctx.Err(); write failures are fatal system
// errors.
func (r *Runner) Run(ctx context.Context) error {
	if r.session.Done() {
		return nil
	}

	r.logger.Debug("plain countdown started", "initial", r.session.Initial())

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.session.Stop()
			return ctx.Err()

		case <-ticker.C:
			line := fmt.Sprintf("Remaining time: %s\n", duration.Format(r.session.Remaining()))
			if _, err := io.WriteString(r.out, line); err != nil {
				return herrors.SystemWithCause(
					"Failed to write to the terminal",
					"Try notifying the developer",
					err)
			}
			if r.session.Tick() == countdown.Finished {
				return nil
			}
		}
	}
}
