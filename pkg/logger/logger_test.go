package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"DEBUG":   DebugLevel,
		"info":    InfoLevel,
		"warn":    WarnLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"bogus":   InfoLevel,
		"":        InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: InfoLevel, Format: JSONFormat, Output: &buf, Service: "piiscan"})

	log.WithField("path", "/api/detect").Info("request handled in %dms", 7)

	var e struct {
		Level   string         `json:"level"`
		Message string         `json:"message"`
		Service string         `json:"service"`
		Fields  map[string]any `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}
	if e.Level != "INFO" || e.Message != "request handled in 7ms" || e.Service != "piiscan" {
		t.Errorf("entry = %+v", e)
	}
	if e.Fields["path"] != "/api/detect" {
		t.Errorf("fields = %v", e.Fields)
	}
}

func TestLogger_LevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: WarnLevel, Format: JSONFormat, Output: &buf})

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")
	log.Error("kept")

	lines := strings.Count(buf.String(), "\n")
	if lines != 2 {
		t.Errorf("wrote %d entries, want 2: %q", lines, buf.String())
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&Config{Format: JSONFormat, Output: &buf})

	parent.WithField("child", true)
	parent.Info("plain")

	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent logger inherited a derived field: %q", buf.String())
	}
}

func TestLogger_RequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Format: JSONFormat, Output: &buf})
	ctx := ContextWithRequestID(context.Background(), "req-42")

	log.WithContext(ctx).Info("handled")

	var e struct {
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.RequestID != "req-42" {
		t.Errorf("request_id = %q, want req-42", e.RequestID)
	}

	if got := RequestIDFromContext(ctx); got != "req-42" {
		t.Errorf("RequestIDFromContext = %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context returned %q", got)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Format: TextFormat, Output: &buf})

	log.Info("server started")

	out := buf.String()
	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "server started") {
		t.Errorf("text output = %q", out)
	}
	if json.Valid(buf.Bytes()) {
		t.Errorf("text format emitted JSON: %q", out)
	}
}
