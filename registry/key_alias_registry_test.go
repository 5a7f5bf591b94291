/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"testing"
)

func TestDefaultKeyAliases(t *testing.T) {
	ResetKeyAliases()

	expected := AliasList{"partitionKey", "PK", "pk", "partition_key"}
	if got := KeyAliases(GroupPartitionKey); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRegisterKeyAliases(t *testing.T) {
	ResetKeyAliases()
	defer ResetKeyAliases()

	RegisterKeyAliases(GroupSortKey, "range_key", "SK", "")

	expected := AliasList{"sortKey", "SK", "sk", "sort_key", "range_key"}
	if got := KeyAliases(GroupSortKey); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestKeyAliasesReturnsCopy(t *testing.T) {
	ResetKeyAliases()

	list := KeyAliases(GroupEntityType)
	list[0] = "mutated"

	if KeyAliases(GroupEntityType)[0] != "EntityType" {
		t.Error("KeyAliases should not expose the registry's backing slice")
	}
}

func TestAliasListFirst(t *testing.T) {
	list := AliasList{"PK", "pk", "partition_key"}
	present := map[string]bool{"pk": true, "partition_key": true}

	name, ok := list.First(func(n string) bool { return present[n] })
	if !ok || name != "pk" {
		t.Errorf("Expected pk, got %q (ok=%v)", name, ok)
	}

	if _, ok := list.First(func(string) bool { return false }); ok {
		t.Error("Expected no match")
	}
}
