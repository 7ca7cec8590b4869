// Package logging provides the engine's structured log events. It mirrors
// the teacher's injectable-logger shape (a package-level logger set once
// via WithLogger) but speaks levelled, structured events instead of plain
// strings, since spec.md requires a configurable minimum severity and
// error-severity logging of captured panics.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Fields carries structured key/value context alongside a log event, e.g.
// supervisor URN, child identity, strategy.
type Fields = logrus.Fields

// Logger is the interface the engine logs through. The default
// implementation wraps logrus; callers may supply their own.
type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Error(msg string, fields Fields)
}

type logrusLogger struct {
	entry *logrus.Logger
}

func (l *logrusLogger) Debug(msg string, fields Fields) {
	l.entry.WithFields(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields Fields) {
	l.entry.WithFields(fields).Info(msg)
}

func (l *logrusLogger) Error(msg string, fields Fields) {
	l.entry.WithFields(fields).Error(msg)
}

// NewLogrus builds the default Logger, emitting to stderr at the given
// level. When inTest is true output goes to stdout instead, with colours
// disabled; it is not routed through a *testing.T, so it is captured only
// as far as the test binary's stdout is.
func NewLogrus(level logrus.Level, inTest bool) Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: inTest})
	if inTest {
		l.SetOutput(os.Stdout)
	} else {
		l.SetOutput(os.Stderr)
	}
	return &logrusLogger{entry: l}
}

var current Logger = NewLogrus(logrus.InfoLevel, false)

// WithLogger installs the package-level logger used by Debug/Info/Error.
func WithLogger(l Logger) {
	if l == nil {
		return
	}
	current = l
}

// Debug logs a debug-severity event through the currently installed logger.
func Debug(msg string, fields Fields) { current.Debug(msg, fields) }

// Info logs an info-severity event through the currently installed logger.
func Info(msg string, fields Fields) { current.Info(msg, fields) }

// Error logs an error-severity event through the currently installed
// logger. Per spec.md §7, both a captured child panic and a panic during
// restart are logged at this severity.
func Error(msg string, fields Fields) { current.Error(msg, fields) }
