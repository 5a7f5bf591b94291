/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixture = `{"Items":[
	{"PK":{"S":"USER#1"},"SK":{"S":"PROFILE#1"},"age":{"N":"30"}},
	{"PK":{"S":"USER#2"},"SK":{"S":"ORDER#9"},"age":{"N":"41"}}
]}`

func writeFixture(t *testing.T, content string) (input, output string) {
	t.Helper()
	dir := t.TempDir()
	input = filepath.Join(dir, "items.json")
	if err := os.WriteFile(input, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return input, filepath.Join(dir, "out.csv")
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"-version", "-v"} {
		code, stdout, _ := runCLI(t, "", flag)
		if code != 0 || !strings.HasPrefix(stdout, "ddbexport ") {
			t.Errorf("%s: unexpected result %d %q", flag, code, stdout)
		}
	}
}

func TestExportFromJSONWithFilterFlags(t *testing.T) {
	input, output := writeFixture(t, fixture)

	code, stdout, stderr := runCLI(t, "",
		"-from-json", input, "-o", output, "-no-prompt", "-filter", "SK=PROFILE*", "-log-level", "error")
	if code != 0 {
		t.Fatalf("Exit code %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Successfully exported 1 records") {
		t.Errorf("Unexpected stdout: %q", stdout)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "PK,SK,age\nUSER#1,PROFILE#1,30\n" {
		t.Errorf("Unexpected CSV: %q", data)
	}
}

func TestLogLinesCarryOneComponent(t *testing.T) {
	input, output := writeFixture(t, fixture)

	code, _, stderr := runCLI(t, "", "-from-json", input, "-o", output, "-no-prompt", "-log-level", "info")
	if code != 0 {
		t.Fatalf("Exit code %d, stderr: %s", code, stderr)
	}

	seen := map[string]bool{}
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		if n := strings.Count(line, `"component"`); n != 1 {
			t.Errorf("Expected one component field, found %d in %s", n, line)
		}
		for _, name := range []string{"jsonfile", "export", "sink"} {
			if strings.Contains(line, `"component":"`+name+`"`) {
				seen[name] = true
			}
		}
	}
	for _, name := range []string{"jsonfile", "export", "sink"} {
		if !seen[name] {
			t.Errorf("No log line from component %s in %s", name, stderr)
		}
	}
}

func TestExportFromJSONInteractive(t *testing.T) {
	input, output := writeFixture(t, fixture)

	code, stdout, stderr := runCLI(t, "y\nbad line\nage!=30\n\n",
		"-from-json", input, "-output", output, "-log-level", "error")
	if code != 0 {
		t.Fatalf("Exit code %d, stderr: %s", code, stderr)
	}
	for _, want := range []string{"TABLE ANALYSIS COMPLETE", "Invalid format", "Successfully exported 1 records"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	data, _ := os.ReadFile(output)
	if !strings.Contains(string(data), "USER#2") || strings.Contains(string(data), "USER#1") {
		t.Errorf("Unexpected CSV: %q", data)
	}
}

func TestExportTerminalStates(t *testing.T) {
	t.Run("NoItems", func(t *testing.T) {
		input, output := writeFixture(t, `{"Items":[]}`)
		code, stdout, _ := runCLI(t, "", "-from-json", input, "-o", output, "-no-prompt")
		if code != 0 || !strings.Contains(stdout, "No items found") {
			t.Errorf("Unexpected result %d %q", code, stdout)
		}
		if _, err := os.Stat(output); !os.IsNotExist(err) {
			t.Error("No file should be written for an empty table")
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		input, output := writeFixture(t, fixture)
		code, stdout, _ := runCLI(t, "", "-from-json", input, "-o", output, "-filter", "SK=NOPE")
		if code != 0 || !strings.Contains(stdout, "No items match") {
			t.Errorf("Unexpected result %d %q", code, stdout)
		}
	})

	t.Run("AbortAtPrompt", func(t *testing.T) {
		input, output := writeFixture(t, fixture)
		code, stdout, _ := runCLI(t, "", "-from-json", input, "-o", output)
		if code != 0 || !strings.Contains(stdout, "Export cancelled") {
			t.Errorf("Unexpected result %d %q", code, stdout)
		}
	})
}

func TestCLIErrors(t *testing.T) {
	input, output := writeFixture(t, fixture)

	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{"TooManyArgs", []string{"a", "b"}, 2, "at most one table"},
		{"UnknownFlag", []string{"-nope"}, 2, "flag provided but not defined"},
		{"BadFilter", []string{"-from-json", input, "-o", output, "-filter", "missing-equals"}, 1, "invalid format"},
		{"MissingFile", []string{"-from-json", filepath.Join(t.TempDir(), "gone.json"), "-o", output, "-no-prompt"}, 1, "not found"},
		{"MissingConfig", []string{"-config", filepath.Join(t.TempDir(), "gone.yaml")}, 2, "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			if code != tt.code {
				t.Errorf("Expected exit code %d, got %d (stderr %q)", tt.code, code, stderr)
			}
			if !strings.Contains(stderr, tt.stderr) {
				t.Errorf("Expected stderr to contain %q, got %q", tt.stderr, stderr)
			}
		})
	}
}

func TestStringList(t *testing.T) {
	var s stringList
	_ = s.Set("a=1")
	_ = s.Set("b=")
	if s.String() != "a=1, b=" {
		t.Errorf("Unexpected value %q", s.String())
	}
}
