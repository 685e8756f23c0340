// Package cli implements the sparsegraph command-line interface.
//
// Commands load a graph file (JSON adjacency or TOML edge manifest), run
// a query from the library packages, and print the result. Graph file
// parsing lives here: the core packages only ever see a fully
// constructed core.Graph.
//
// All commands accept --verbose (-v) for debug-level logging; loggers
// travel through the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger builds a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is a private context key type to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to the context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or a default one when
// the context carries none (tests calling commands directly).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
