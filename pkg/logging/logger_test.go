package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		enable slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"warn level", "warn", slog.LevelWarn},
		{"error level", "error", slog.LevelError},
		{"default info", "", slog.LevelInfo},
		{"unknown falls back to info", "verbose", slog.LevelInfo},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level)
			if !logger.Enabled(ctx, tt.enable) {
				t.Fatalf("expected level %s to be enabled", tt.enable)
			}
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	logger := Default()
	logger.Info("test message", "key", "value")

	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("default logger should log at info level")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("default logger should not log at debug level")
	}
}

func TestWith(t *testing.T) {
	logger := New("debug").With("session_id", "abc")
	if logger == nil || logger.Logger == nil {
		t.Fatal("With should return a usable logger")
	}
	logger.Debug("scoped message")
}

func TestNewText(t *testing.T) {
	logger := NewText("debug")
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("text logger should honor level")
	}
}
