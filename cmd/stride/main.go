package main

import (
	"log/slog"
	"os"
	"slices"

	"github.com/pterm/pterm"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stridewalk/stride/app"
	"github.com/stridewalk/stride/config"
)

// initLogger routes structured logs to a rotated file so they never
// corrupt the session display.
func initLogger() {
	level := slog.LevelInfo
	if slices.Contains(os.Args[1:], "--debug") {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	slog.SetDefault(
		slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
	)
}

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	config.InitializePaths()

	initLogger()

	if err := run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
