/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(Config{Level: "info", Output: &buf}), "export")

	log.Debug().Msg("hidden")
	log.Info().Int("items", 3).Msg("scanned")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Log line is not JSON: %v", err)
	}
	if entry["component"] != "export" || entry["service"] != "ddbexport" {
		t.Errorf("Missing context fields: %v", entry)
	}
	if entry["message"] != "scanned" || entry["items"] != float64(3) {
		t.Errorf("Unexpected entry: %v", entry)
	}
}

func TestPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Pretty: true, Output: &buf})
	log.Debug().Msg("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("Expected console output to contain message, got %q", buf.String())
	}
}
