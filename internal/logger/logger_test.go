package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Warn("failed to load video title", "video_id", "abc")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q", buf.String())
	}
	if entry["video_id"] != "abc" || entry["service"] != "landing" || entry["level"] != "WARN" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "error", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l.Info("hidden")
	l.Error("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("level filter not applied: %q", buf.String())
	}
}

func TestNew_RejectsUnknownValues(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "verbose", "text"); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range testCases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
