package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger implements the [Logger] interface by delegating to a
// [slog.Logger].
//
// Trace records are emitted at slog.Level(LevelTrace), which is Debug-4.
// To print it as "TRACE", use the ReplaceAttr field of [slog.HandlerOptions]:
//
//	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
//		if a.Key == slog.LevelKey && a.Value.Any().(slog.Level) == slog.Level(logger.LevelTrace) {
//			a.Value = slog.StringValue("TRACE")
//		}
//		return a
//	}
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger].
// It will panic if the logger is nil.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("nil logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{
		ctx:    ctx,
		logger: logger,
	}
}

// Trace logs at the trace level.
func (l *SlogLogger) Trace(msg string, args ...any) {
	l.log(LevelTrace, msg, args...)
}

// Debug logs at the debug level.
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

// Info logs at the info level.
func (l *SlogLogger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs at the warn level.
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

// Error logs at the error level.
func (l *SlogLogger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

// log builds the record itself so that the source position points at the
// caller of the exported method rather than at this adapter.
func (l *SlogLogger) log(level Level, msg string, args ...any) {
	slogLevel := slog.Level(level)
	if !l.logger.Enabled(l.ctx, slogLevel) {
		return
	}

	// skip [runtime.Callers, this function, this function's caller]
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), slogLevel, msg, pcs[0])
	r.Add(args...)

	_ = l.logger.Handler().Handle(l.ctx, r)
}
