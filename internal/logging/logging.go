package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the package logger. It defaults to a text handler on stderr
// until Setup is called.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Verbose reports whether debug logging is enabled.
var Verbose bool

// Setup configures the package logger. With verbose enabled, debug
// records are emitted. With jsonOutput enabled, records are written as
// JSON. A nil writer falls back to stderr.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
}

// Debug logs a debug record. Only emitted in verbose mode.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info record.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning record.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error record.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// With returns a logger with the given attributes attached.
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}
