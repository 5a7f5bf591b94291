/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package profile infers the attribute structure of an untyped collection from a
// bounded sample of its items.
package profile

import (
	"sort"

	"github.com/suparena/ddbexport/attrvalue"
)

const (
	// DefaultSampleSize is the number of leading items profiled when no size is given.
	DefaultSampleSize = 100
	// MaxSampleValues caps the distinct string values kept per attribute.
	MaxSampleValues = 10
)

// AttributeProfile aggregates what the sample shows about one attribute.
type AttributeProfile struct {
	Name string
	// Count is the number of sampled items carrying the attribute.
	Count int
	// Types lists the observed kinds in first-seen order. Binary kinds are
	// counted but not recorded.
	Types []attrvalue.Kind
	// Samples holds up to MaxSampleValues distinct String values, first seen first.
	Samples []string
}

// HasType reports whether kind was observed for the attribute.
func (p *AttributeProfile) HasType(kind attrvalue.Kind) bool {
	for _, k := range p.Types {
		if k == kind {
			return true
		}
	}
	return false
}

// TypeNames returns the observed kinds as report names.
func (p *AttributeProfile) TypeNames() []string {
	names := make([]string, len(p.Types))
	for i, k := range p.Types {
		names[i] = k.String()
	}
	return names
}

func (p *AttributeProfile) observe(v attrvalue.Value) {
	p.Count++

	kind := v.Kind()
	switch kind {
	case attrvalue.KindB, attrvalue.KindBS, attrvalue.KindUnknown:
		return
	}
	if !p.HasType(kind) {
		p.Types = append(p.Types, kind)
	}

	if kind != attrvalue.KindS || len(p.Samples) >= MaxSampleValues {
		return
	}
	s, _ := v.Text()
	for _, existing := range p.Samples {
		if existing == s {
			return
		}
	}
	p.Samples = append(p.Samples, s)
}

// Schema maps attribute names to their profiles.
type Schema map[string]*AttributeProfile

// Ranked returns the profiles ordered by descending count, ties by name.
func (s Schema) Ranked() []*AttributeProfile {
	out := make([]*AttributeProfile, 0, len(s))
	for _, p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Sample returns the first min(len(items), size) items. A non-positive size
// selects DefaultSampleSize.
func Sample(items []attrvalue.Item, size int) []attrvalue.Item {
	if size <= 0 {
		size = DefaultSampleSize
	}
	if len(items) > size {
		return items[:size]
	}
	return items
}

// Analyze profiles the leading sample of items. Items past the sample are
// ignored even though they may still be exported. The input is not modified.
func Analyze(items []attrvalue.Item, sampleSize int) Schema {
	schema := make(Schema)
	for _, item := range Sample(items, sampleSize) {
		for name, v := range item {
			p, ok := schema[name]
			if !ok {
				p = &AttributeProfile{Name: name}
				schema[name] = p
			}
			p.observe(v)
		}
	}
	return schema
}
