// Package logger is a small levelled printf logger bound to an io.Writer.
//
// Info output carries no prefix so the benchmark's report lines come out
// verbatim; Warn and Error lines are prefixed so they stand out in the same
// stream. Debug output is off unless the level is raised.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level selects which messages are written.
type Level int

const (
	Error Level = iota
	Warn
	Info
	Debug
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Logger writes formatted lines at or below its level.
// It is safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	w     io.Writer
	level Level
}

// New returns a Logger writing to w at level Info.
// A nil w selects os.Stdout.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{w: w, level: Info}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{w: io.Discard, level: Error}
}

// SetLevel changes the verbosity.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the current verbosity.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.w
}

func (l *Logger) IsWarn() bool  { return l.Level() >= Warn }
func (l *Logger) IsInfo() bool  { return l.Level() >= Info }
func (l *Logger) IsDebug() bool { return l.Level() >= Debug }

// Errorf is always written.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf("ERROR: "+format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.IsWarn() {
		l.printf("Warning: "+format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.IsInfo() {
		l.printf(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.IsDebug() {
		l.printf(format, args...)
	}
}

func (l *Logger) printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}
