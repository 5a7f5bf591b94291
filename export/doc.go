/*
Package export runs one table export end to end.

A Pipeline reads every item from a datastore.Source, profiles the leading
sample, asks a ClauseProvider for filters, decodes the surviving items and
hands the sorted column union and rows to a Sink:

	p := export.New(source, sink.NewCSVFile("out.csv", log),
		export.WithClauseProvider(export.StaticClauses(clauses...)),
		export.WithLogger(log),
	)
	summary, err := p.Run(ctx, "app-data")

An empty table, a filter that keeps nothing and an operator abort are terminal
states reported in Summary.Status, not errors. Transport failures are returned
as errors.TransportError and nothing is written.
*/
package export
