/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"github.com/suparena/ddbexport/attrvalue"
)

// MatchAll reports whether item satisfies every clause. An empty clause list
// matches everything.
func MatchAll(item attrvalue.Item, clauses []Clause) bool {
	for _, c := range clauses {
		if !c.Match(item) {
			return false
		}
	}
	return true
}

// Apply returns the items that satisfy every clause, preserving order.
func Apply(items []attrvalue.Item, clauses []Clause) []attrvalue.Item {
	if len(clauses) == 0 {
		return items
	}

	matched := make([]attrvalue.Item, 0, len(items))
	for _, item := range items {
		if MatchAll(item, clauses) {
			matched = append(matched, item)
		}
	}
	return matched
}
