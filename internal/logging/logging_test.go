package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONOnlyWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	SetTraceEnabled(false)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("filter.append", map[string]interface{}{"query": "fo"})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace %q: %v", data, err)
	}
	if entry.Event != "filter.append" || entry.Payload["query"] != "fo" {
		t.Fatalf("unexpected trace entry %#v", entry)
	}
}

func TestErrorAppendsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("spawn failed"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "spawn failed") {
		t.Fatalf("expected error in log, got %q", data)
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
}
