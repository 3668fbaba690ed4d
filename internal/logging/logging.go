// Package logging builds the diagnostic logger. Diagnostics are separate
// from the tool's user-facing output: they are off below the configured
// level and always go to the error stream.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps normal runs quiet.
const DefaultLevel = zerolog.WarnLevel

// New returns a console logger writing to w at the named level. Unknown or
// empty level names fall back to DefaultLevel.
func New(w io.Writer, level string, noColor bool) zerolog.Logger {
	lvl := ParseLevel(level)

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}

	logger := zerolog.New(consoleWriter).Level(lvl).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if lvl <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// ParseLevel maps a level name (trace, debug, info, warn, error) to a
// zerolog level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// LogCommand logs an external command about to be executed.
func LogCommand(logger zerolog.Logger, cmd string, args []string, dir string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Str("dir", dir).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
