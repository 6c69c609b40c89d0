package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{level: "DEBUG", enabled: slog.LevelDebug, muted: slog.LevelDebug - 1},
		{level: "info", enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{level: "WARN", enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{level: "bogus", enabled: slog.LevelError, muted: slog.LevelWarn},
		{level: "", enabled: slog.LevelError, muted: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(&bytes.Buffer{}, tt.level)
			if !log.Enabled(context.Background(), tt.enabled) {
				t.Errorf("level %v should be enabled", tt.enabled)
			}
			if log.Enabled(context.Background(), tt.muted) {
				t.Errorf("level %v should be muted", tt.muted)
			}
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "INFO").Info("analysis complete", "url", "https://example.com")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "analysis complete" || entry["url"] != "https://example.com" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["source"]; !ok {
		t.Error("expected source location in log entry")
	}
}
