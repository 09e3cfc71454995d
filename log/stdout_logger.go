package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutLogger is the standard output logger for printing logs at, or above, a minimum level.
type StdoutLogger struct {
	// MinLevel is the lowest level which will be printed, the zero value prints everything.
	MinLevel Level

	// Writer overrides where logs are written, defaults to stdout.
	Writer io.Writer

	// now is used to timestamp each line; defaults to time.Now.
	now func() time.Time
}

// Log method for the StdoutLogger which adds prefix dependant on the level and prints message inputted to terminal.
func (s StdoutLogger) Log(level Level, msg string, args ...any) {
	if level < s.MinLevel {
		return
	}

	w := s.Writer
	if w == nil {
		w = os.Stdout
	}

	now := s.now
	if now == nil {
		now = time.Now
	}

	fmt.Fprintln(w, now().UTC().Format(time.RFC3339Nano)+" "+level.String()+": "+fmt.Sprintf(msg, args...))
}
