/*
Package filter compiles operator filter lines into clauses and applies them to
raw items.

Grammar, split on the first '=':

	EntityType=USER     equals
	SK=PROFILE*         wildcard, '*' matches any run of characters
	SK=ORDER#[0-9]?*    '?' matches one character, [seq] and [!seq] a class
	deletedAt=          attribute absent, NULL, or the empty string
	deletedAt!=         attribute present and not empty
	status!=ACTIVE      attribute absent, or present with another value

A value is treated as a glob only when it contains '*'.

Clauses are matched against the wire value before decoding. Numbers compare by
their exact text and booleans as True/False:

	clauses, err := filter.ParseAll([]string{"SK=PROFILE*", "status!=DELETED"})
	if err != nil {
	    return err
	}
	kept := filter.Apply(items, clauses)

An item survives when every clause matches.
*/
package filter
