// Package shutdown runs a blocking task with interrupt-signal handling,
// guaranteeing the stop hook executes before the process returns.
package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// RunWithGracefulShutdown starts runner and blocks until it completes
// or SIGINT/SIGTERM arrives. On a signal the run context is canceled
// and stop is invoked with a timeout; the runner's context.Canceled is
// swallowed since cancellation was requested.
func RunWithGracefulShutdown(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	runner func(ctx context.Context) error,
	stop func(ctx context.Context) error,
) error {
	runCtx, runCancel := context.WithCancel(ctx)
	defer runCancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- runner(runCtx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		logger.Debug("received signal, stopping countdown", "signal", sig)
		runCancel()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), timeout)
		defer stopCancel()

		if err := stop(stopCtx); err != nil {
			logger.Error("stop hook failed", "error", err)
		}

		select {
		case err := <-runDone:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		case <-stopCtx.Done():
			logger.Warn("shutdown timeout exceeded")
		}

		return nil

	case err := <-runDone:
		return err
	}
}
