// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	quietEnabled = false
	logger       Logger
	loggerMu     sync.RWMutex
)

func init() {
	if val := os.Getenv("AIDASH_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// SetQuiet suppresses success and info console output. Errors and
// warnings still print, and the mirror logger still sees everything.
func SetQuiet(enabled bool) {
	quietEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func mirror(fn func(l Logger, msg string), msg string) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l != nil {
		fn(l, msg)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger, m string) { l.Error(m) }, msg)
	fmt.Fprintf(os.Stderr, "%sError:%s %s%s\n", Red, Reset, msg, Reset)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger, m string) { l.Info(m, "type", "success") }, msg)
	if quietEnabled {
		return
	}
	fmt.Fprintf(os.Stdout, "%s%s%s %s%s\n", Green, checkmark, Reset, msg, Reset)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger, m string) { l.Warn(m) }, msg)
	fmt.Fprintf(os.Stderr, "%sWarning:%s %s%s\n", Yellow, Reset, msg, Reset)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger, m string) { l.Info(m) }, msg)
	if quietEnabled {
		return
	}
	fmt.Fprintf(os.Stdout, "%s%s%s\n", Blue, msg, Reset)
}

// Debug outputs a debug message to stderr if debug is enabled.
func Debug(msgs ...string) {
	msg := strings.Join(msgs, " ")
	mirror(func(l Logger, m string) { l.Debug(m) }, msg)
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%sDebug:%s %s%s\n", Cyan, Reset, msg, Reset)
}
