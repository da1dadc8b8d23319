// ABOUTME: Logger construction for quicknotes diagnostics.
// ABOUTME: Wraps logrus with a text formatter and a configurable level.

package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to w at the named level (debug, info, warn, error).
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})
	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
