// Package log provides a small leveled console logger with a colored,
// fixed prefix per component.
package log

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

const (
	levelInfo    = "INFO"
	levelWarning = "WARNING"
	levelError   = "ERROR"

	colorReset = "\033[0m"
)

// ErrNilWriter is returned when a logger is created without an output.
var ErrNilWriter = errors.New("log output writer is nil")

// Logger writes timestamped, color coded messages tagged with a component
// prefix. Safe for concurrent use.
type Logger struct {
	prefix string
	color  string

	mu  sync.Mutex
	out io.Writer
}

// New creates a Logger writing to out. The color is an ANSI escape sequence
// applied to the whole line; pass an empty string for plain output.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    out,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log(levelInfo, msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.log(levelWarning, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log(levelError, msg)
}

func (l *Logger) log(level, msg string) {
	timestamp := time.Now().Format("2006/01/02 15:04:05")

	reset := colorReset
	if l.color == "" {
		reset = ""
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s%s [%s] [%s] %s%s\n", l.color, timestamp, l.prefix, level, msg, reset)
}
