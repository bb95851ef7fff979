// Package log provides the Logger used throughout the
// emulator, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface accepted by every
// component that logs.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at the
// info level.
func New() Logger {
	return NewWithLevel(logrus.StandardLogger().Out, logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing plain text to out,
// discarding messages below level.
func NewWithLevel(out io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(name string) (logrus.Level, error) {
	return logrus.ParseLevel(name)
}
