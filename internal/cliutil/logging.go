package cliutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging configures the global slog default logger, writing to
// os.Stderr so stdout stays free for a get/print/path verb's own output.
// Safe to call more than once; each call replaces the previous handler.
// Modeled on harvx's config.SetupLogging.
func SetupLogging(level slog.Level, jsonFormat bool) {
	SetupLoggingWithWriter(level, jsonFormat, os.Stderr)
}

// SetupLoggingWithWriter is the writer-parameterized form, used directly by
// tests that want to capture log output instead of writing to stderr.
func SetupLoggingWithWriter(level slog.Level, jsonFormat bool, w io.Writer) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ResolveLogLevel applies JCT_DEBUG, then --verbose/--quiet, then the
// default info level — the same priority order harvx applies for its own
// debug env var and flag pair.
func ResolveLogLevel(verbose, quiet bool) slog.Level {
	if os.Getenv("JCT_DEBUG") == "1" {
		return slog.LevelDebug
	}
	if verbose {
		return slog.LevelDebug
	}
	if quiet {
		return slog.LevelError
	}
	return slog.LevelInfo
}

// ResolveLogFormat reads JCT_LOG_FORMAT, defaulting to text.
func ResolveLogFormat() bool {
	return strings.EqualFold(os.Getenv("JCT_LOG_FORMAT"), "json")
}

// traceWriter prefixes every write with "[trace] ", used for the
// --trace-resolve flag's candidate-by-candidate resolver narration.
type traceWriter struct {
	w io.Writer
}

// NewTraceWriter returns an io.Writer that prefixes each write with
// "[trace] ". It is handed to the resolver as a Trace callback sink when
// --trace-resolve is set, kept deliberately separate from slog output so
// resolver tracing is visible even at the default (non-debug) log level.
func NewTraceWriter(w io.Writer) io.Writer { return traceWriter{w: w} }

func (t traceWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(append([]byte("[trace] "), p...))
	if n > len(p) {
		n = len(p)
	}
	return n, err
}
