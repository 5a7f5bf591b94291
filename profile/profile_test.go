/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package profile

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/suparena/ddbexport/attrvalue"
)

func TestAnalyze(t *testing.T) {
	items := []attrvalue.Item{
		{"PK": attrvalue.String("USER#1"), "age": attrvalue.Number("30"), "blob": attrvalue.Binary([]byte("x"))},
		{"PK": attrvalue.String("USER#2"), "age": attrvalue.String("unknown"), "tags": attrvalue.StringSet("a")},
		{"PK": attrvalue.String("USER#1"), "deleted": attrvalue.Null(true), "meta": attrvalue.Map(attrvalue.Item{})},
	}

	schema := Analyze(items, 0)

	pk := schema["PK"]
	if pk.Count != 3 {
		t.Errorf("Expected PK count 3, got %d", pk.Count)
	}
	if !reflect.DeepEqual(pk.Samples, []string{"USER#1", "USER#2"}) {
		t.Errorf("Expected distinct samples, got %v", pk.Samples)
	}

	age := schema["age"]
	if !reflect.DeepEqual(age.Types, []attrvalue.Kind{attrvalue.KindN, attrvalue.KindS}) {
		t.Errorf("Expected Number then String, got %v", age.TypeNames())
	}
	if !reflect.DeepEqual(age.Samples, []string{"unknown"}) {
		t.Errorf("Only String values should be sampled, got %v", age.Samples)
	}

	blob := schema["blob"]
	if blob.Count != 1 || len(blob.Types) != 0 {
		t.Errorf("Binary should be counted but not typed, got count=%d types=%v", blob.Count, blob.Types)
	}

	if !schema["deleted"].HasType(attrvalue.KindNULL) || !schema["meta"].HasType(attrvalue.KindM) {
		t.Error("Expected Null and Map types to be recorded")
	}
	if !schema["tags"].HasType(attrvalue.KindSS) {
		t.Error("Expected String Set type to be recorded")
	}
}

func TestAnalyzeSampleBound(t *testing.T) {
	items := make([]attrvalue.Item, 0, 150)
	for i := 0; i < 150; i++ {
		item := attrvalue.Item{"id": attrvalue.Number(fmt.Sprint(i))}
		if i >= 100 {
			item["late"] = attrvalue.String("only after the sample")
		}
		items = append(items, item)
	}

	schema := Analyze(items, 0)
	if schema["id"].Count != DefaultSampleSize {
		t.Errorf("Expected %d sampled items, got %d", DefaultSampleSize, schema["id"].Count)
	}
	if _, ok := schema["late"]; ok {
		t.Error("Attributes past the sample should not be profiled")
	}

	if got := Analyze(items, 10)["id"].Count; got != 10 {
		t.Errorf("Expected explicit sample size 10, got %d", got)
	}
}

func TestAnalyzeSampleValueCap(t *testing.T) {
	var items []attrvalue.Item
	for i := 0; i < 25; i++ {
		items = append(items, attrvalue.Item{"name": attrvalue.String(fmt.Sprintf("n%02d", i))})
	}

	p := Analyze(items, 0)["name"]
	if len(p.Samples) != MaxSampleValues {
		t.Fatalf("Expected %d samples, got %d", MaxSampleValues, len(p.Samples))
	}
	if p.Samples[0] != "n00" || p.Samples[9] != "n09" {
		t.Errorf("Expected first-seen values, got %v", p.Samples)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if schema := Analyze(nil, 100); len(schema) != 0 {
		t.Errorf("Expected empty schema, got %v", schema)
	}
}

func TestRanked(t *testing.T) {
	schema := Schema{
		"b": {Name: "b", Count: 2},
		"a": {Name: "a", Count: 2},
		"c": {Name: "c", Count: 5},
	}

	var names []string
	for _, p := range schema.Ranked() {
		names = append(names, p.Name)
	}
	if !reflect.DeepEqual(names, []string{"c", "a", "b"}) {
		t.Errorf("Unexpected order: %v", names)
	}
}
