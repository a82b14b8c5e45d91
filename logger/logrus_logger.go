package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the [Logger] interface on top of logrus.
// Key-value pairs become logrus fields; a dangling key is stored under
// "!BADKEY", mirroring slog.
type LogrusLogger struct {
	logger logrus.FieldLogger
}

var _ Logger = (*LogrusLogger)(nil)

// NewLogrusLogger returns a new [LogrusLogger].
// It will panic if the logger is nil.
func NewLogrusLogger(logger logrus.FieldLogger) *LogrusLogger {
	if logger == nil {
		panic("nil logger")
	}
	return &LogrusLogger{logger: logger}
}

// LogrusLevel returns the logrus level corresponding to level.
// LevelOff maps to logrus.PanicLevel, the quietest level logrus has.
func LogrusLevel(level Level) logrus.Level {
	switch {
	case level <= LevelTrace:
		return logrus.TraceLevel
	case level <= LevelDebug:
		return logrus.DebugLevel
	case level <= LevelInfo:
		return logrus.InfoLevel
	case level <= LevelWarn:
		return logrus.WarnLevel
	case level <= LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.PanicLevel
	}
}

// Trace logs at the trace level.
func (l *LogrusLogger) Trace(msg string, args ...any) {
	l.entry(args).Trace(msg)
}

// Debug logs at the debug level.
func (l *LogrusLogger) Debug(msg string, args ...any) {
	l.entry(args).Debug(msg)
}

// Info logs at the info level.
func (l *LogrusLogger) Info(msg string, args ...any) {
	l.entry(args).Info(msg)
}

// Warn logs at the warn level.
func (l *LogrusLogger) Warn(msg string, args ...any) {
	l.entry(args).Warn(msg)
}

// Error logs at the error level.
func (l *LogrusLogger) Error(msg string, args ...any) {
	l.entry(args).Error(msg)
}

func (l *LogrusLogger) entry(args []any) *logrus.Entry {
	fields := make(logrus.Fields, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fields["!BADKEY"] = args[i]
			break
		}
		fields[fmt.Sprint(args[i])] = args[i+1]
	}
	return l.logger.WithFields(fields)
}
