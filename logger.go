package retro

import (
	"log/slog"

	"github.com/gogpu/retro/internal/logging"
)

// SetLogger configures the logger for retro and all its sub-packages.
// By default, retro produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by retro:
//   - [slog.LevelDebug]: slot realization, asset synthesis, window creation
//   - [slog.LevelInfo]: engine lifecycle (bootstrap, reset)
//   - [slog.LevelWarn]: bootstrap failures that were rolled back
//
// Example:
//
//	retro.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by retro.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
