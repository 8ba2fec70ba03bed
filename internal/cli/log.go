// Package cli implements the lvldense command-line interface.
//
// Three commands are provided:
//   - gen:  write a random graph in the textual dump format
//   - run:  load a delimited symbol graph and run an algorithm over it
//   - info: load a graph and print its structural profile
//
// All commands support --verbose (-v) for debug-level logging and
// --config for TOML-supplied defaults. Loggers travel through
// context.Context so subcommands never reach for globals.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w, filtering below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a distinct context key type to avoid collisions.
type ctxKey int

// loggerKey is the context key under which the logger is stored.
const loggerKey ctxKey = 0

// withLogger returns a context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the context logger, falling back to the
// package default so commands always have one.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
