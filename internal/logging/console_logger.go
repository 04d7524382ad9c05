// Package logging provides concrete implementations of the expload.Logger interface.
package logging

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	color   bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, Verbose() calls will produce output.
// Error tags are colored only when stderr is a terminal.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		color:   term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	tag := "[ERROR] "
	if l.color {
		tag = ansiRed + "[ERROR]" + ansiReset + " "
	}
	l.write(tag, format, args...)
}

func (l *ConsoleLogger) write(tag, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, tag+format+"\n", args...)
	} else {
		fmt.Fprint(os.Stderr, tag+format+"\n")
	}
}
