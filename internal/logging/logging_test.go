package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{" debug ", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("output %q contains info line below warn level", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=1") {
		t.Fatalf("output %q missing warn line", out)
	}
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := Open("  ", "debug")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if logger == nil || closer == nil {
		t.Fatalf("Open returned nil logger or closer")
	}
	logger.Error("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.log")
	logger, closer, err := Open(path, "info")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	logger.Info("mounted", "items", 8)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "items=8") {
		t.Fatalf("log file = %q, want it to contain items=8", data)
	}
}

func TestOpen_OffLevelSkipsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "carousel.log")
	_, closer, err := Open(path, "OFF")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Stat(%q) err = %v, want not exist", path, err)
	}
}

func TestOpen_BadLevel(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("Open returned nil error for bad level")
	}
}
