package logger

import (
	"io"
	"log/slog"
)

// Interface is the structured logger injected into services, repositories
// and middleware. Every method takes alternating key/value pairs.
type Interface interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})

	// With returns a logger that adds keysAndValues to every record.
	With(keysAndValues ...interface{}) Interface
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger wraps the process logger built by Init.
func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

// NewNop returns a logger that discards everything.
func NewNop() Interface {
	return &slogLogger{
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})),
	}
}

func (l *slogLogger) With(keysAndValues ...interface{}) Interface {
	return &slogLogger{logger: l.logger.With(keysAndValues...)}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

// Fatalw logs at error level and panics so deferred cleanup still runs.
func (l *slogLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
	panic("fatal error: " + msg)
}
