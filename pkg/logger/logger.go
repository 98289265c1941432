package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	slogmulti "github.com/samber/slog-multi"
)

var (
	mu      sync.RWMutex
	current = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	closer  io.Closer
)

// Init configures the package logger. Production writes JSON, anything else
// writes text. When file is not empty, JSON records are also appended there.
func Init(env, level, file string) error {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var console slog.Handler
	if env == "production" {
		console = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		console = slog.NewTextHandler(os.Stdout, opts)
	}

	handler := console
	var c io.Closer
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			setLogger(slog.New(console), nil)
			return err
		}
		handler = slogmulti.Fanout(console, slog.NewJSONHandler(f, opts))
		c = f
	}

	setLogger(slog.New(handler), c)
	return nil
}

// SetOutput points the logger at w, used by tests and the CLI.
func SetOutput(w io.Writer, level string) {
	setLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})), nil)
}

// Close releases the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog.Level.
// Unknown strings default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setLogger(l *slog.Logger, c io.Closer) {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	current = l
	closer = c
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	get().Error(msg, args...)
	_ = Close()
	os.Exit(1)
}

// With returns a child logger carrying args.
func With(args ...any) *slog.Logger {
	return get().With(args...)
}

// FromContext returns a logger tagged with the request's trace id, if any.
func FromContext(ctx context.Context) *slog.Logger {
	if id := TraceID(ctx); id != "" {
		return get().With("trace_id", id)
	}
	return get()
}
