package main

import (
	"log/slog"
	"os"
)

// InitLogger routes structured logs to stderr so they never interleave
// with the rendered tables and prompts on stdout.
func InitLogger() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
