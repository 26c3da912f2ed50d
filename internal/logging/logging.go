// Package logging provides structured logging setup for rutero.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the default slog logger.
// Verbose mode uses human-readable text at debug level; otherwise JSON.
func Setup(verbose bool) {
	var handler slog.Handler
	if verbose {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}
	slog.SetDefault(slog.New(handler))
}
