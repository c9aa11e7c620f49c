package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log discards output until Init is called, so packages under test can log freely.
var Log = slog.New(slog.NewTextHandler(io.Discard, nil))

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

// With returns a child logger tagged with the given component name.
func With(component string) *slog.Logger {
	return Log.With("component", component)
}
