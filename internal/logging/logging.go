// Package logging builds the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the named level. An empty or
// unknown level falls back to warn so normal CLI output stays clean.
func New(level string, w io.Writer) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// NewJSON is New with a JSON formatter, for log shipping.
func NewJSON(level string, w io.Writer) *logrus.Logger {
	logger := New(level, w)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}
