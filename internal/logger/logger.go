package logger

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type runIDKey struct{}

type implLogger struct {
	logger zerolog.Logger
}

// NewWithWriter creates a Logger with the given format ("text" or "json").
// Lines below level are dropped.
func NewWithWriter(level, format string, w io.Writer) Logger {
	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	}

	return &implLogger{
		logger: zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

// WithRunID attaches a run identifier that is emitted on every log line
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run identifier stored in ctx, if any
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *implLogger) emit(ctx context.Context, ev *zerolog.Event, msg string, args []interface{}) {
	if id := RunID(ctx); id != "" {
		ev = ev.Str("run_id", id)
	}
	ev.Msgf(msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, l.logger.Debug(), msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, l.logger.Info(), msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, l.logger.Warn(), msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, l.logger.Error(), msg, args)
}
