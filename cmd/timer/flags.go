package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Root command flags
	FlagPlain    = "plain"
	FlagProgress = "progress"
)
