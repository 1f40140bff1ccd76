package logutil

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "ISSUEREPORT_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger to write to stderr.
//
// Parameters:
//   - debug: When true, or when ISSUEREPORT_DEBUG=true, enables debug-level logging
//   - structured: When true, outputs JSON-formatted logs; otherwise uses text format
//
// This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	SetupLoggerWithWriter(os.Stderr, debug, structured)
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// Commands pass their error stream so that tests can capture logs.
// This function is safe for concurrent use.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	level := slog.LevelInfo
	if debug || os.Getenv(EnvDebug) == "true" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	defer mu.Unlock()
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// Debug logs a debug message with optional key-value pairs.
//
// Example:
//
//	logutil.Debug("resolved environment", "platform", env.PlatformVersion)
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
//
// Example:
//
//	logutil.Warn("report URL is long", "length", len(link))
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Logger returns the underlying slog.Logger for advanced usage.
// This function is safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
