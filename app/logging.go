package app

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/quiztimer/internal/pathutil"
)

const envDebug = "QUIZTIMER_DEBUG"

var logFile io.Closer

// newLogger returns a JSON logger writing to w.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// setupLogging sends the default logger to a rotated file in the data
// directory.
func setupLogging() {
	rotator := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logFile = rotator

	_, debug := os.LookupEnv(envDebug)

	slog.SetDefault(newLogger(rotator, debug))
}

func closeLogging() {
	if logFile != nil {
		_ = logFile.Close()
	}
}
