// Package config provides configuration types and defaults for timer-cli.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for timer-cli.
type Config struct {
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
	UI          UIConfig          `yaml:"ui" mapstructure:"ui"`
}

// PathsConfig holds file paths.
type PathsConfig struct {
	// Log is the debug log written while the TUI owns the terminal.
	Log string `yaml:"log" mapstructure:"log"`
}

// LogRotationConfig holds settings for debug log rotation
// (lumberjack-based).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// UIConfig holds display settings.
type UIConfig struct {
	ProgressBar bool `yaml:"progress_bar" mapstructure:"progress_bar"` // Show the elapsed-fraction bar
	Plain       bool `yaml:"plain" mapstructure:"plain"`               // Force the non-interactive front end
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Log: defaultLogPath(),
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 2,
			MaxAgeDays: 7,
			Compress:   true,
		},
		UI: UIConfig{
			ProgressBar: true,
			Plain:       false,
		},
	}
}

// defaultLogPath places the debug log under the user cache directory,
// falling back to the system temp directory.
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "timer-cli", "timer.log")
}
