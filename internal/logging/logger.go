package logging

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Sink receives one formatted line per surviving log call. The logger
// takes no locks of its own; safety under concurrent use is the sink's
// concern.
type Sink func(string)

// Logger filters log calls against a fixed cutoff and writes color-wrapped
// lines to its sink.
type Logger struct {
	cutoff Level
	sink   Sink
}

// New builds a Logger with the given cutoff. A nil sink writes each line
// to stdout.
func New(cutoff Level, sink Sink) *Logger {
	if sink == nil {
		sink = func(line string) { fmt.Fprintln(os.Stdout, line) }
	}
	return &Logger{cutoff: cutoff, sink: sink}
}

// Log emits one colorized line to the sink when level passes the cutoff.
// Below the cutoff it returns immediately without doing any formatting
// work. A level outside the closed set surfaces ErrInvalidLevel.
func (l *Logger) Log(level Level, messages ...any) error {
	if level < l.cutoff {
		return nil
	}

	color, err := ColorFor(level)
	if err != nil {
		return err
	}

	parts := make([]string, len(messages))
	for i, m := range messages {
		parts[i] = fmt.Sprint(m)
	}
	l.sink(Colorize(strings.Join(parts, " "), color))
	return nil
}

// Trace logs at the trace level.
func (l *Logger) Trace(messages ...any) { _ = l.Log(LevelTrace, messages...) }

// Debug logs at the debug level.
func (l *Logger) Debug(messages ...any) { _ = l.Log(LevelDebug, messages...) }

// Info logs at the info level.
func (l *Logger) Info(messages ...any) { _ = l.Log(LevelInfo, messages...) }

// Warn logs at the warn level.
func (l *Logger) Warn(messages ...any) { _ = l.Log(LevelWarn, messages...) }

// Error logs at the error level.
func (l *Logger) Error(messages ...any) { _ = l.Log(LevelError, messages...) }

type ctxKey struct{}

// WithContext attaches a logger to the context.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in context, or a stdout logger
// with an info cutoff when none is attached.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
			return l
		}
	}
	return New(LevelInfo, nil)
}
