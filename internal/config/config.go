// Package config handles logger and console setup
package config

import (
	"os"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// IsInteractive returns false if the report is printed to stdout and stdout is not
// a terminal.
func IsInteractive(output string) bool {
	if output != "" {
		return true
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
