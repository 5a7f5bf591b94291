/*
Package registry holds the attribute-name precedence lists used to recognize
single-table design conventions.

Each Group is an ordered AliasList; detectors consult it in order and use the
first name that matches:

	registry.KeyAliases(registry.GroupSortKey)
	// [sortKey SK sk sort_key]

Tables that use other names can extend a group at startup. Added names rank
after the built-in ones:

	registry.RegisterKeyAliases(registry.GroupPartitionKey, "pkey")

The registry is thread-safe and should be populated during initialization,
typically from configuration.
*/
package registry
