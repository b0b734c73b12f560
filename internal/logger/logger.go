// Package logger builds the process-wide structured logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pageza/mealprep-ai/backend/config"
)

// New creates a logger for the given environment. Production emits JSON lines;
// every other environment uses the human-readable text formatter, and development
// also records the calling function.
// An unparseable level falls back to info.
func New(env config.Environment, level string, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}

	log := logrus.New()
	log.SetOutput(out)

	if env.IsProduction() {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetReportCaller(env.IsDevelopment())

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
