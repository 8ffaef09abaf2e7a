package logging

import (
	"fmt"
	"os"
)

// DebugEnabled returns true if debug mode is enabled via OJT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("OJT_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Println(args...)
	}
}

// Errorf prints a formatted message to stderr. Used for failures that degrade
// silently in the UI (read errors after the fallback query) but still need a trace.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}
