package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: JSONFormat, Output: &buf})

	log.Debug("filtered")
	log.Info("filtered")
	log.Warn("kept")
	log.Error("kept", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines with WARN level, got %d", len(lines))
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSONFormat, Output: &buf, Component: "analysis"})

	log.Info("point analyzed", map[string]interface{}{"point": "point_0", "ndvi": 0.62})

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" || entry.Message != "point analyzed" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Component != "analysis" {
		t.Errorf("component = %q", entry.Component)
	}
	if entry.Fields["point"] != "point_0" {
		t.Errorf("fields = %v", entry.Fields)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: TextFormat, Output: &buf, Component: "reports"})

	log.Warnf("chart generation skipped for %s", "point_1")

	out := buf.String()
	for _, want := range []string{"WARN", "[reports]", "chart generation skipped for point_1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: INFO, Format: JSONFormat, Output: &buf})

	base.WithComponent("weather").Info("lookup done")

	var entry Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry.Component != "weather" {
		t.Errorf("component = %q, want weather", entry.Component)
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if level, ok := ParseLevel("debug"); !ok || level != DEBUG {
		t.Errorf("ParseLevel(debug) = %v, %v", level, ok)
	}
	if level, ok := ParseLevel("WARNING"); !ok || level != WARN {
		t.Errorf("ParseLevel(WARNING) = %v, %v", level, ok)
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Error("ParseLevel(loud) should fail")
	}
	if format, ok := ParseFormat("JSON"); !ok || format != JSONFormat {
		t.Errorf("ParseFormat(JSON) = %v, %v", format, ok)
	}
}
