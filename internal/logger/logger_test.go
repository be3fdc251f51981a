package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelDebug},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCollectorCountsByLevel(t *testing.T) {
	log, collector := NewCollectorLogger()

	log.Info("one")
	log.Warn("two")
	log.Error("three")
	log.Error("four")

	if n := collector.CountAtLevel(slog.LevelError); n != 2 {
		t.Errorf("CountAtLevel(error) = %d, want 2", n)
	}
	if n := collector.CountAtLevel(slog.LevelWarn); n != 1 {
		t.Errorf("CountAtLevel(warn) = %d, want 1", n)
	}
	if n := len(collector.Records()); n != 4 {
		t.Errorf("Records() = %d entries, want 4", n)
	}
}

func TestContextRequestLogger(t *testing.T) {
	log, collector := NewCollectorLogger()

	ctx := ContextWithRequestLogger(context.Background(), log)
	ContextRequestLogger(ctx).Info("scoped")

	if n := len(collector.Records()); n != 1 {
		t.Fatalf("Records() = %d entries, want 1", n)
	}

	// without a stored logger the fallback must still return something usable
	if ContextRequestLogger(context.Background()) == nil {
		t.Error("ContextRequestLogger() = nil for bare context")
	}
}
