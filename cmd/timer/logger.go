package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/DanikVitek/timer-cli/internal/config"
)

// TUILoggerResult contains the results of setting up logging for TUI mode.
type TUILoggerResult struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *TUILoggerResult) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupTUILogger creates a logger that writes to a rotating file instead
// of stderr. This prevents log output from corrupting the alternate
// screen while the countdown owns the terminal. Uses lumberjack for
// automatic rotation based on the provided config.
func SetupTUILogger(logPath string, level slog.Leveler, rotationCfg config.LogRotationConfig) (*TUILoggerResult, error) {
	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    rotationCfg.MaxSizeMB,
		MaxBackups: rotationCfg.MaxBackups,
		MaxAge:     rotationCfg.MaxAgeDays,
		Compress:   rotationCfg.Compress,
	}

	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: level}))

	return &TUILoggerResult{
		Logger:   logger,
		LogFile:  logWriter,
		FilePath: logPath,
	}, nil
}

// SetupTUILoggerWithWriter creates a logger that writes to the given
// writer. Useful for tests that capture the output.
func SetupTUILoggerWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
