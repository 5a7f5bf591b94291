/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"sort"
	"strings"

	"github.com/suparena/ddbexport/attrvalue"
	"github.com/suparena/ddbexport/profile"
	"github.com/suparena/ddbexport/registry"
)

// UnknownLabel is emitted for items that match no naming convention.
const UnknownLabel = "unknown"

// Pattern is a label and the number of sampled items that produced it.
type Pattern struct {
	Label string
	Count int
}

// Patterns maps labels to item counts.
type Patterns map[string]int

// Ranked returns the patterns by descending count, ties by label.
func (p Patterns) Ranked() []Pattern {
	out := make([]Pattern, 0, len(p))
	for label, count := range p {
		out = append(out, Pattern{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Detector classifies items into coarse entity groups from key naming conventions.
type Detector struct {
	TypeKeys      registry.AliasList
	SortKeys      registry.AliasList
	PartitionKeys registry.AliasList
	SampleSize    int
}

// NewDetector returns a Detector using the alias lists currently registered.
func NewDetector() *Detector {
	return &Detector{
		TypeKeys:      registry.KeyAliases(registry.GroupEntityType),
		SortKeys:      registry.KeyAliases(registry.GroupSortKey),
		PartitionKeys: registry.KeyAliases(registry.GroupPartitionKey),
		SampleSize:    profile.DefaultSampleSize,
	}
}

// Detect counts labels over the leading sample of items.
func (d *Detector) Detect(items []attrvalue.Item) Patterns {
	patterns := make(Patterns)
	for _, item := range profile.Sample(items, d.SampleSize) {
		for _, label := range d.Labels(item) {
			patterns[label]++
		}
	}
	return patterns
}

// Labels returns every label that applies to one item, or UnknownLabel.
// Within each alias list only the first String-typed attribute is used.
func (d *Detector) Labels(item attrvalue.Item) []string {
	var labels []string

	if v, ok := firstString(item, d.TypeKeys); ok {
		labels = append(labels, "EntityType: "+v)
	}

	if v, ok := firstString(item, d.SortKeys); ok {
		if prefix, _, found := strings.Cut(v, "#"); found {
			labels = append(labels, "SK prefix: "+prefix)
		} else if v != "" {
			labels = append(labels, "SK: "+v)
		}
	}

	if v, ok := firstString(item, d.PartitionKeys); ok && strings.Contains(v, "#") {
		for _, segment := range strings.Split(v, "#") {
			if segment != "" && !isDigits(segment) {
				labels = append(labels, "PK contains: "+segment)
			}
		}
	}

	if len(labels) == 0 {
		labels = append(labels, UnknownLabel)
	}
	return labels
}

func firstString(item attrvalue.Item, aliases registry.AliasList) (string, bool) {
	name, ok := aliases.First(func(name string) bool {
		v, present := item[name]
		return present && v.Kind() == attrvalue.KindS
	})
	if !ok {
		return "", false
	}
	return item[name].Text()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
