package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_ProdEmitsJSONWithServiceName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "prod", "info")

	logger.Info("payment succeeded", "order_id", "o1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("prod output is not JSON: %v", err)
	}
	if record["service"] != "vitrine" {
		t.Errorf("service = %v, want vitrine", record["service"])
	}
	if record["msg"] != "payment succeeded" {
		t.Errorf("msg = %v", record["msg"])
	}
	if _, ok := record["time"].(string); !ok {
		t.Error("time attribute missing or not a string")
	}
}

func TestNewLogger_DevEmitsText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "dev", "info")

	logger.Info("server started")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("dev output should be text, got %q", out)
	}
	if !strings.Contains(out, "server started") {
		t.Errorf("message missing from %q", out)
	}
}

func TestNewLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "dev", "warn")

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info record should have been filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn record missing")
	}
}

func TestParseLevel_UnknownDefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "INFO" {
		t.Errorf("parseLevel(verbose) = %v, want INFO", got)
	}
}
