// Package log provides the small leveled logger blot's command-line front
// end uses. It wraps the standard library's log package rather than
// replacing it: SetFlags passes straight through.
package log

import (
	"fmt"
	golog "log"
	"os"
)

// A Level is a log verbosity level. Increasing levels increase in
// verbosity: if the package is logging at level L, messages with level
// M <= L are printed.
type Level int

const (
	// Error only prints error messages.
	Error Level = iota - 1
	// Info is the default level.
	Info
	// Debug additionally prints diagnostic detail, enabled by the CLI's
	// --verbose flag.
	Debug
)

var level = Info

// SetLevel sets the package's current verbosity.
func SetLevel(l Level) {
	level = l
}

// At reports whether the package is currently logging at level l.
func At(l Level) bool {
	return l <= level
}

// Debugf prints a message at Debug level if the current level allows it.
func Debugf(format string, v ...interface{}) {
	if At(Debug) {
		golog.Output(2, fmt.Sprintf(format, v...))
	}
}

// Fatal prints a message in the manner of fmt.Sprint and exits with
// status 1.
func Fatal(v ...interface{}) {
	golog.Output(2, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints a message in the manner of fmt.Sprintf and exits with
// status 1.
func Fatalf(format string, v ...interface{}) {
	golog.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// SetFlags sets the output flags of the underlying standard logger.
func SetFlags(flags int) {
	golog.SetFlags(flags)
}
