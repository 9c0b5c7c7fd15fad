package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used throughout the emulator.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text lines to stderr at
// info level.
func New() Logger {
	return NewWithOutput(nil, false)
}

// NewWithOutput returns a Logger writing to w, or stderr when w is
// nil. When debug is true, Debugf lines are written as well.
func NewWithOutput(w io.Writer, debug bool) Logger {
	l := logrus.New()
	if w != nil {
		l.SetOutput(w)
	}
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
