package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceRespectsToggle(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		SetOutput(nil)
	})

	SetTraceEnabled(false)
	Trace("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output while tracing is disabled, got %q", buf.String())
	}

	SetTraceEnabled(true)
	if !TraceEnabled() {
		t.Fatalf("expected trace enabled")
	}
	Trace("registry.register", map[string]interface{}{"section": "Navigate"})

	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode trace entry: %v (%q)", err, buf.String())
	}
	if entry.Event != "registry.register" || entry.Payload["section"] != "Navigate" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestErrorWritesLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Error(nil)
	if buf.Len() != 0 {
		t.Fatalf("nil errors should not be logged")
	}
	Error(errors.New("route failed"))
	if !strings.Contains(buf.String(), "route failed") {
		t.Fatalf("expected error in log, got %q", buf.String())
	}
}

func TestConfigureCreatesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "palette.log")
	Configure(path, 1)
	t.Cleanup(func() { Configure("", 0) })

	Error(errors.New("written to disk"))
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "written to disk") {
		t.Fatalf("unexpected log contents %q", data)
	}
}
