package main

import (
	"log/slog"
	"os"
)

// setupLogging configures the process-wide slog logger for heapctl's own
// operational messages. The allocator's event log is a separate,
// recursion-safe facility; slog never sits on an allocation path.
func setupLogging() {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
