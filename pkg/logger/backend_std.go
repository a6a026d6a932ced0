package logger

import (
	"log/slog"
	"os"
)

func newStdHandler(cfg Config) slog.Handler {
	return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     effectiveLevel(cfg),
		AddSource: cfg.AddSource,
	})
}

// Явно заданный Level важнее флага Debug.
func effectiveLevel(cfg Config) slog.Level {
	if cfg.Level == 0 && cfg.Debug {
		return slog.LevelDebug
	}
	return cfg.Level
}
