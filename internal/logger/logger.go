// Package logger builds the application's structured JSON logger.
//
// Every entry is one JSON object per line with a "ts" field rendered in the
// configured timezone, matching the format of the HTTP access log.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	TimestampField = "ts"
	ErrorField     = "error_message"
)

func init() {
	zerolog.ErrorFieldName = ErrorField
}

// New returns a JSON logger writing to stdout at the given level.
func New(level string, loc *time.Location) zerolog.Logger {
	return NewWithWriter(os.Stdout, level, loc)
}

// NewWithWriter is New with an explicit sink, mostly for tests.
// Unknown or empty levels fall back to info.
func NewWithWriter(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).Level(lvl).Hook(timestampHook{loc: loc})
}

// Component returns a child logger tagged with component.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(TimestampField, time.Now().In(h.loc).Format(time.RFC3339Nano))
}
