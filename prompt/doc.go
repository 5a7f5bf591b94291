/*
Package prompt holds the operator-facing adapters of the exporter: numbered
table selection, the analysis report and interactive filter collection.

Prompter implements export.ClauseProvider, so an interactive run is wired as

	p := prompt.New(os.Stdin, os.Stdout)
	pipeline := export.New(source, csvSink, export.WithClauseProvider(p))

Each filter line is parsed with filter.Parse; a malformed line is reported and
the prompt continues. A blank line finishes collection.
*/
package prompt
