package main

import (
	"log/slog"
	"os"
)

func main() {
	InitLogger()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}
