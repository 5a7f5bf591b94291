/*
Package entity guesses which logical entity types share a single-table design.

Single-table designs encode the entity type in key names. The Detector looks at
three alias groups from the registry, each in precedence order:

	EntityType, entity_type, type, Type            -> "EntityType: <value>"
	sortKey, SK, sk, sort_key                       -> "SK prefix: <before first #>" or "SK: <value>"
	partitionKey, PK, pk, partition_key             -> "PK contains: <segment>" per non-numeric segment

All applicable labels are emitted for an item; an item with none is labeled
"unknown". Detect counts labels over the leading sample of a collection:

	patterns := entity.NewDetector().Detect(items)
	for _, p := range patterns.Ranked() {
	    fmt.Printf("%s: %d items\n", p.Label, p.Count)
	}
*/
package entity
