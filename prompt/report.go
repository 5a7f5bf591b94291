/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/suparena/ddbexport/export"
)

// TopAttributes is how many attributes the analysis report lists.
const TopAttributes = 10

// Report writes the pre-filter analysis: attribute count, entity patterns by
// frequency and the most common attributes with their types.
func Report(w io.Writer, a export.Analysis) {
	banner := strings.Repeat("=", len(rule))

	fmt.Fprintf(w, "\n%s\nTABLE ANALYSIS COMPLETE\n%s\n", banner, banner)
	fmt.Fprintf(w, "\nRetrieved %d items from %s.\n", a.Retrieved, a.Table)
	fmt.Fprintf(w, "Detected %d unique attributes in the table.\n", len(a.Schema))

	if len(a.Patterns) > 0 {
		fmt.Fprintf(w, "\nDetected entity patterns (from sample data):\n%s\n", rule[:40])
		for _, pat := range a.Patterns.Ranked() {
			fmt.Fprintf(w, "  %s: %d items\n", pat.Label, pat.Count)
		}
	}

	ranked := a.Schema.Ranked()
	if len(ranked) > TopAttributes {
		ranked = ranked[:TopAttributes]
	}
	fmt.Fprintf(w, "\nMost common attributes:\n%s\n", rule[:40])
	for _, attr := range ranked {
		types := strings.Join(attr.TypeNames(), ", ")
		if types == "" {
			types = "untyped"
		}
		fmt.Fprintf(w, "  %s: %d items (%s)\n", attr.Name, attr.Count, types)
		if len(attr.Samples) > 0 {
			fmt.Fprintf(w, "      e.g. %s\n", strings.Join(attr.Samples, ", "))
		}
	}
}

// PrintSummary writes the result of a run in one or two lines.
func PrintSummary(w io.Writer, s export.Summary, output string) {
	switch s.Status {
	case export.StatusNoItems:
		fmt.Fprintf(w, "No items found in %s.\n", s.Table)
		return
	case export.StatusNoMatches:
		fmt.Fprintf(w, "No items match the specified filters (%d retrieved).\n", s.Retrieved)
		return
	case export.StatusAborted:
		fmt.Fprintln(w, "Export cancelled.")
		return
	}

	fmt.Fprintf(w, "Successfully exported %d records to %s\n", s.Matched, output)

	shown := s.Columns
	more := ""
	if len(shown) > 5 {
		shown = shown[:5]
		more = "..."
	}
	fmt.Fprintf(w, "CSV contains %d columns: %s%s\n", len(s.Columns), strings.Join(shown, ", "), more)
}
