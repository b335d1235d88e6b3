package logctx

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logEntryKey = struct{ logEntryKey string }{}

// NewLogEntry builds a log entry writing to w at the given level.
// Reports are written to stdout, so logs belong on stderr.
func NewLogEntry(w io.Writer, level logrus.Level) *logrus.Entry {
	if w == nil {
		w = os.Stderr
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	return logrus.NewEntry(log)
}

// GetLogEntry gets the log entry from the context or returns a default entry.
func GetLogEntry(ctx context.Context) *logrus.Entry {
	loggerInter := ctx.Value(&logEntryKey)
	if loggerInter != nil {
		return loggerInter.(*logrus.Entry)
	}

	return NewLogEntry(os.Stderr, logrus.WarnLevel)
}

// WithLogEntry builds a context with a log entry.
func WithLogEntry(ctx context.Context, le *logrus.Entry) context.Context {
	return context.WithValue(ctx, &logEntryKey, le)
}
