// Package applog provides the process-wide structured logger used by
// cmd/beaver and the library packages it drives. Verbosity is the only
// knob: a boolean toggles between zerolog's info and debug levels,
// rather than inventing a richer level scheme.
package applog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger. The zero value is not usable; build one
// with New.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing human-readable console output to w, at
// debug level if verbose, info level otherwise. w defaults to os.Stderr
// when nil.
func New(verbose bool, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	zl := zerolog.New(console).Level(level).With().Timestamp().Logger()

	return &Logger{zl: zl}
}

// Debug logs a debug-level message with optional key/value pairs
// (alternating key string, value any), suppressed unless New was called
// with verbose=true.
func (l *Logger) Debug(msg string, kv ...any) { l.log(l.zl.Debug(), msg, kv) }

// Info logs an info-level message.
func (l *Logger) Info(msg string, kv ...any) { l.log(l.zl.Info(), msg, kv) }

// Warn logs a warn-level message, used for explicitly slow paths such as
// a backward Seek that must replay from the start.
func (l *Logger) Warn(msg string, kv ...any) { l.log(l.zl.Warn(), msg, kv) }

// Error logs an error-level message.
func (l *Logger) Error(msg string, kv ...any) { l.log(l.zl.Error(), msg, kv) }

func (l *Logger) log(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}

// nop is a Logger that discards everything, returned by Discard for
// callers (mainly tests) that want the applog.Logger interface without
// console noise.
var nop = &Logger{zl: zerolog.New(io.Discard)}

// Discard returns a Logger that writes nowhere.
func Discard() *Logger { return nop }
