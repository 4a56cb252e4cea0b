package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qahistory/internal/history"
)

// TestRecorderWritesComponentField verifies recorded messages carry the component.
func TestRecorderWritesComponentField(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Config{Format: FormatJSON}, &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer closer.Close()

	var recorder history.Recorder = NewRecorder(Named(logger, "history"))
	recorder.Record(history.UpdatedMessage)

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if line["msg"] != "Conversation history updated" {
		t.Fatalf("unexpected msg: %v", line["msg"])
	}
	if line["component"] != "history" {
		t.Fatalf("unexpected component: %v", line["component"])
	}
	if line["level"] != "info" {
		t.Fatalf("unexpected level: %v", line["level"])
	}
}

// TestNewRespectsLevel verifies messages below the configured level are dropped.
func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Config{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	NewRecorder(Named(logger, "history")).Record("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

// TestNewWritesFile verifies file output creates parent directories.
func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "qahistory.log")
	logger, closer, err := New(Config{File: path}, nil)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	NewRecorder(Named(logger, "history")).Record("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("expected message in log file, got %q", data)
	}
}

// TestNewRejectsBadInput verifies invalid levels and formats fail.
func TestNewRejectsBadInput(t *testing.T) {
	if _, _, err := New(Config{Level: "loud"}, nil); err == nil {
		t.Fatalf("expected level error")
	}
	if _, _, err := New(Config{Format: "xml"}, nil); err == nil {
		t.Fatalf("expected format error")
	}
}
