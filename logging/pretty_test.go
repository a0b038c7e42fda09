package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newPrettyLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewPrettyHandler(buf, PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: level},
	}))
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *slog.Logger)
		level string
		msg   string
	}{
		{"debug", func(l *slog.Logger) { l.Debug("debug message") }, "DEBUG:", "debug message"},
		{"info", func(l *slog.Logger) { l.Info("info message") }, "INFO:", "info message"},
		{"warn", func(l *slog.Logger) { l.Warn("warn message") }, "WARN:", "warn message"},
		{"error", func(l *slog.Logger) { l.Error("error message") }, "ERROR:", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newPrettyLogger(&buf, slog.LevelDebug))

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, tt.msg)
			assert.Contains(t, out, "{}")
		})
	}
}

func TestPrettyHandler_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newPrettyLogger(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrettyHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	logger := newPrettyLogger(&buf, slog.LevelInfo).With("component", "store")

	logger.Info("loaded", "people", 7, "err", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"component":"store"`)
	assert.Contains(t, out, `"people":7`)
	assert.Contains(t, out, `"err":"boom"`)
}

func TestPrettyHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := newPrettyLogger(&buf, slog.LevelInfo).WithGroup("http")

	logger.Info("request", "status", 200, slog.Group("route", "path", "/person/1"))

	out := buf.String()
	assert.Contains(t, out, `"http.status":200`)
	assert.Contains(t, out, `"http.route":{"path":"/person/1"}`)
}
