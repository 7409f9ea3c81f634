package main

import (
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/lmittmann/tint"

	"github.com/shh-cli/shh/internal/cli"
)

func main() {
	level := slog.LevelWarn
	if slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose") {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	os.Exit(cli.Execute())
}
