package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/DanikVitek/timer-cli/internal/config"
)

func TestSetupTUILogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timer.log")

	result, err := SetupTUILogger(logPath, slog.LevelDebug, config.Default().LogRotation)
	if err != nil {
		t.Fatalf("SetupTUILogger failed: %v", err)
	}
	defer result.Close()

	if result.FilePath != logPath {
		t.Errorf("FilePath = %q, want %q", result.FilePath, logPath)
	}

	result.Logger.Info("test message", "key", "value")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want test message", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want value", entry["key"])
	}
}

func TestSetupTUILogger_LevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timer.log")

	result, err := SetupTUILogger(logPath, slog.LevelInfo, config.Default().LogRotation)
	if err != nil {
		t.Fatalf("SetupTUILogger failed: %v", err)
	}
	defer result.Close()

	result.Logger.Debug("should not appear")

	if data, _ := os.ReadFile(logPath); len(bytes.TrimSpace(data)) != 0 {
		t.Errorf("debug entry was written despite info level: %q", data)
	}
}

func TestSetupTUILoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupTUILoggerWithWriter(&buf, slog.LevelDebug)

	logger.Debug("captured")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["msg"] != "captured" {
		t.Errorf("msg = %v, want captured", entry["msg"])
	}
}
