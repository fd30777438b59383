// Package logging owns the CLI's structured logger. Everything logs to
// stderr so lint reports and formatted output on stdout stay clean for
// piping.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // the shared default logger is package state
var (
	std     *log.Logger
	stdOnce sync.Once
)

// levelNames maps accepted level strings to charm log levels.
//
//nolint:gochecknoglobals // read-only lookup table
var levelNames = map[string]log.Level{
	"debug":   log.DebugLevel,
	"info":    log.InfoLevel,
	"warn":    log.WarnLevel,
	"warning": log.WarnLevel,
	"error":   log.ErrorLevel,
}

func parseLevel(name string) log.Level {
	if lvl, ok := levelNames[strings.ToLower(name)]; ok {
		return lvl
	}
	return log.InfoLevel
}

// New builds a stderr logger at the given level ("debug", "info",
// "warn", "error"; unknown strings mean info). Timestamps and caller
// reporting stay off since kconflint runs are short-lived.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// Default returns the shared logger, creating it on first use.
func Default() *log.Logger {
	stdOnce.Do(func() {
		if std == nil {
			std = New("info")
		}
	})
	return std
}

// SetDefault replaces the shared logger.
func SetDefault(logger *log.Logger) {
	std = logger
}

// SetLevel adjusts the shared logger's level. It accepts the same level
// names as New.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}
