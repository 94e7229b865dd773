// Package cli implements the asciidag command-line interface.
//
// This package provides the render command, which reads an edge-list graph
// description and emits a terminal diagram or a Graphviz-based export. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Verbose mode also registers an
// observability hook that reports the duration of each pipeline stage.
//
// # Example
//
//	import "github.com/matzehuels/asciidag/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stageLogger reports rendering pipeline stages to a logger at debug level.
// It is registered as the observability hook when --verbose is set.
type stageLogger struct {
	logger *log.Logger
}

func (s stageLogger) OnStageStart(stage string) {
	s.logger.Debugf("stage %s started", stage)
}

func (s stageLogger) OnStageComplete(stage string, d time.Duration) {
	s.logger.Debugf("stage %s took %s", stage, d)
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
