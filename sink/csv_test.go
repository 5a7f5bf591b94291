/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sink

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/suparena/ddbexport/attrvalue"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, ""},
		{"string", "alice", "alice"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"int64", int64(30), "30"},
		{"negative", int64(-7), "-7"},
		{"float", 42.5, "42.5"},
		{"integral float", 30.0, "30.0"},
		{"large float", 2500000.0, "2500000.0"},
		{"large fraction", 1234567.5, "1234567.5"},
		{"negative large float", -2500000.0, "-2500000.0"},
		{"small float", 0.0001, "0.0001"},
		{"zero float", 0.0, "0.0"},
		{"tiny float", 1e-05, "1e-05"},
		{"exponent threshold", 1e16, "1e+16"},
		{"huge float", 1.5e30, "1.5e+30"},
		{"inf", math.Inf(1), "+Inf"},
		{"composite blob", `[{"S":"a"}]`, `[{"S":"a"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.value); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []attrvalue.Row{
		{"PK": "USER#1", "age": int64(30), "note": "a, b"},
		{"PK": "USER#2", "tags": `[{"S":"a"}]`},
	}

	if err := WriteCSV(&buf, []string{"PK", "age", "note", "tags"}, rows); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	expected := "PK,age,note,tags\n" +
		"USER#1,30,\"a, b\",\n" +
		`USER#2,,,"[{""S"":""a""}]"` + "\n"
	if buf.String() != expected {
		t.Errorf("Unexpected output:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestCSVFileWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")

	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewCSVFile(path, zerolog.Nop())
	if err := s.Write([]string{"PK"}, []attrvalue.Row{{"PK": "USER#1"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "PK\nUSER#1\n" {
		t.Errorf("Unexpected file content %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected temp file cleanup, found %d entries", len(entries))
	}
}

func TestCSVFileWriteMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.csv")

	if err := NewCSVFile(path, zerolog.Nop()).Write([]string{"PK"}, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Errorf("Expected mode 0644, got %#o", perm)
	}
}

func TestCSVFileWriteMissingDir(t *testing.T) {
	s := NewCSVFile(filepath.Join(t.TempDir(), "nope", "export.csv"), zerolog.Nop())
	if err := s.Write([]string{"PK"}, nil); err == nil {
		t.Fatal("Expected error for missing directory")
	}
}
