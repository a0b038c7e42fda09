package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for an unknown level name.
var ErrInvalidLevel = errors.New("invalid log level")

// ErrInvalidFormat is returned by NewHandler for an unknown format name.
var ErrInvalidFormat = errors.New("invalid log format")

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w %q: must be one of debug, info, warn, error", ErrInvalidLevel, name)
	}
}

// NewHandler returns a handler writing format ("text", "json" or "pretty") to w.
func NewHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.NewTextHandler(w, &opts), nil
	case "json":
		return slog.NewJSONHandler(w, &opts), nil
	case "pretty":
		return NewPrettyHandler(w, PrettyHandlerOptions{SlogOpts: opts}), nil
	default:
		return nil, fmt.Errorf("%w %q: must be one of text, json, pretty", ErrInvalidFormat, format)
	}
}

// Setup builds a handler from level and format names and installs it as the slog default.
func Setup(w io.Writer, levelName, format string) (*slog.Logger, error) {
	level, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	handler, err := NewHandler(w, format, level)
	if err != nil {
		return nil, err
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
