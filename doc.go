/*
Package ddbexport exports DynamoDB tables to CSV.

An export scans every item of a table, profiles a leading sample to report the
attributes and single-table entity patterns it finds, applies operator filters
and writes one column per attribute:

  - attrvalue decodes wire-format attribute values into flat scalars
  - profile and entity analyze the sample
  - filter parses and applies clauses such as SK=PROFILE* or deletedAt=
  - export sequences a run and reports its terminal state
  - datastore/ddb and datastore/jsonfile provide the items

Basic Usage:

	cfg, _ := config.Load("ddbexport.yaml")
	src, _ := ddbexport.DefaultSources().Open(ctx, ddbexport.SourceDynamoDB, cfg, log)

	clauses, _ := filter.ParseAll(cfg.Filters)
	p := export.New(src, sink.NewCSVFile(cfg.Output, log),
		export.WithClauseProvider(export.StaticClauses(clauses...)))
	summary, err := p.Run(ctx, cfg.Table)

The ddbexport command wraps the same flow with interactive table selection and
filter prompts.
*/
package ddbexport
