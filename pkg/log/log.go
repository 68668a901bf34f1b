// Package log provides the logger used throughout the emulator core.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger that writes plain text to stdout at debug level.
func New() Logger {
	return NewWithOutput(os.Stdout, logrus.DebugLevel)
}

// NewWithOutput returns a Logger writing to w, discarding entries below
// the given level.
func NewWithOutput(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
