package logger

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// NewPgxLogger returns a console logger dedicated to SQL tracing.
//
// Query arguments are printed inline so a statement can be read in one line.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				if len(v) > 200 {
					return v[:200] + "..."
				}
				return v
			case []byte:
				return string(v)
			default:
				return fmt.Sprintf("%v", v)
			}
		},
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("component", "database").
		Logger()
}

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.DebugLevel:
		return int(tracelog.LogLevelDebug)
	case zerolog.InfoLevel:
		return int(tracelog.LogLevelInfo)
	case zerolog.WarnLevel:
		return int(tracelog.LogLevelWarn)
	case zerolog.ErrorLevel:
		return int(tracelog.LogLevelError)
	default:
		return int(tracelog.LogLevelNone)
	}
}

// SlowQueryLogger wraps a tracelog.Logger and raises statements slower
// than threshold to warn level.
type SlowQueryLogger struct {
	next      tracelog.Logger
	threshold time.Duration
}

// NewSlowQueryLogger returns next unchanged when threshold is zero.
func NewSlowQueryLogger(next tracelog.Logger, threshold time.Duration) tracelog.Logger {
	if threshold <= 0 {
		return next
	}
	return &SlowQueryLogger{next: next, threshold: threshold}
}

func (l *SlowQueryLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if d, ok := data["time"].(time.Duration); ok && d >= l.threshold && level > tracelog.LogLevelWarn {
		level = tracelog.LogLevelWarn
		msg = "slow " + msg
	}
	l.next.Log(ctx, level, msg, data)
}
