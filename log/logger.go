// Package log provides the logging facade used by the priority queue packages, by default all logging is discarded.
package log

import (
	"fmt"
	"strings"
)

//go:generate mockery --name Logger --case underscore --inpackage

// Level is a type alias which is used to indicate the verbosity of an log statement.
type Level uint8

const (
	// LevelTrace is the most verbose log level including finer grained informational events than debug level.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained informational events that are the most useful to debug the library.
	LevelDebug

	// LevelInfo includes informational messages that highlight the progress of events in the library at a
	// course-grained level.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the library to continue running.
	LevelError

	// LevelPanic includes errors events which should lead to a panic. This level will only be used in the most severe
	// of cases.
	LevelPanic
)

// String returns the four character prefix used when printing the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return fmt.Sprintf("Level(%d)", uint8(l))
}

// Name returns the lower case name of the level, as accepted by 'ParseLevel'.
func (l Level) Name() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warn"
	case LevelError:
		return "error"
	case LevelPanic:
		return "panic"
	}

	return strings.ToLower(l.String())
}

// ParseLevel returns the level with the given (case insensitive) name, for example "debug" or "warn".
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "panic":
		return LevelPanic, nil
	}

	return 0, fmt.Errorf("unknown log level '%s'", name)
}

// Logger receives every message logged by the priority queue packages; implementations decide where, and whether,
// each level is written.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// logger receives all output from the helpers below, <nil> discards it.
var logger Logger

// SetLogger installs the logger used by the priority queue packages, pass <nil> to silence them again.
func SetLogger(l Logger) {
	logger = l
}

// Logf forwards the message to the installed logger at the given level.
//
// NOTE: Messages are dropped until a logger has been installed with 'SetLogger'.
func Logf(level Level, format string, args ...any) {
	if logger != nil {
		logger.Log(level, format, args...)
	}
}

// Tracef logs per-operation detail, such as extracting from an empty queue.
func Tracef(format string, args ...any) { Logf(LevelTrace, format, args...) }

// Debugf logs at LevelDebug.
func Debugf(format string, args ...any) { Logf(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func Infof(format string, args ...any) { Logf(LevelInfo, format, args...) }

// Warnf logs at LevelWarning, for example when ignoring malformed configuration.
func Warnf(format string, args ...any) { Logf(LevelWarning, format, args...) }

// Errorf logs at LevelError.
func Errorf(format string, args ...any) { Logf(LevelError, format, args...) }

// Panicf logs at LevelPanic then panics with the formatted message, it's reserved for misuse of the API.
func Panicf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	Logf(LevelPanic, format, args...)
	panic(msg)
}
