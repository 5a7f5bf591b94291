/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sync"
)

// Group names a family of attribute names that play the same role in a
// single-table design.
type Group string

const (
	// GroupEntityType holds explicit entity type attributes.
	GroupEntityType Group = "entityType"
	// GroupSortKey holds sort key attributes.
	GroupSortKey Group = "sortKey"
	// GroupPartitionKey holds partition key attributes.
	GroupPartitionKey Group = "partitionKey"
)

// AliasList is an ordered precedence list of attribute names. Earlier names win.
type AliasList []string

// First returns the first alias for which match reports true.
func (l AliasList) First(match func(name string) bool) (string, bool) {
	for _, name := range l {
		if match(name) {
			return name, true
		}
	}
	return "", false
}

var defaultAliases = map[Group]AliasList{
	GroupEntityType:   {"EntityType", "entity_type", "type", "Type"},
	GroupSortKey:      {"sortKey", "SK", "sk", "sort_key"},
	GroupPartitionKey: {"partitionKey", "PK", "pk", "partition_key"},
}

var (
	aliasRegistry = cloneAliases(defaultAliases)
	mu            sync.RWMutex
)

// RegisterKeyAliases appends aliases to a group. They rank after every alias
// already registered; duplicates are ignored.
func RegisterKeyAliases(group Group, aliases ...string) {
	mu.Lock()
	defer mu.Unlock()

	list := aliasRegistry[group]
	for _, alias := range aliases {
		if alias == "" || contains(list, alias) {
			continue
		}
		list = append(list, alias)
	}
	aliasRegistry[group] = list
}

// KeyAliases returns a copy of the precedence list registered for group.
func KeyAliases(group Group) AliasList {
	mu.RLock()
	defer mu.RUnlock()

	list := aliasRegistry[group]
	out := make(AliasList, len(list))
	copy(out, list)
	return out
}

// ResetKeyAliases restores the built-in precedence lists.
func ResetKeyAliases() {
	mu.Lock()
	defer mu.Unlock()
	aliasRegistry = cloneAliases(defaultAliases)
}

func cloneAliases(src map[Group]AliasList) map[Group]AliasList {
	out := make(map[Group]AliasList, len(src))
	for group, list := range src {
		out[group] = append(AliasList(nil), list...)
	}
	return out
}

func contains(list AliasList, name string) bool {
	for _, existing := range list {
		if existing == name {
			return true
		}
	}
	return false
}
