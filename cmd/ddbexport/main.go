/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/suparena/ddbexport"
	"github.com/suparena/ddbexport/config"
	"github.com/suparena/ddbexport/export"
	"github.com/suparena/ddbexport/filter"
	"github.com/suparena/ddbexport/logging"
	"github.com/suparena/ddbexport/prompt"
	"github.com/suparena/ddbexport/sink"
)

const usageExamples = `
Examples:
  # Interactive mode, shows the table list and prompts for a selection
  ddbexport -profile prod

  # Direct table, filters from the command line
  ddbexport -filter 'SK=PROFILE*' -filter 'deletedAt=' my-table

  # List available tables
  ddbexport -list-tables -profile prod

  # Export a DynamoDB-JSON file
  ddbexport -from-json data.json -output results.csv
`

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ", ") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type options struct {
	version    bool
	configPath string
	profile    string
	region     string
	endpoint   string
	output     string
	fromJSON   string
	listTables bool
	noPrompt   bool
	sampleSize int
	logLevel   string
	logPretty  bool
	filters    stringList
	table      string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("ddbexport", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&opts.version, "version", false, "Show version information")
	fs.BoolVar(&opts.version, "v", false, "Show version information (short)")
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.profile, "profile", "", "AWS profile name")
	fs.StringVar(&opts.profile, "p", "", "AWS profile name (short)")
	fs.StringVar(&opts.region, "region", "", "AWS region")
	fs.StringVar(&opts.endpoint, "endpoint", "", "DynamoDB endpoint override, e.g. http://localhost:8000")
	fs.StringVar(&opts.output, "output", "", "Output CSV filename (default "+config.DefaultOutput+")")
	fs.StringVar(&opts.output, "o", "", "Output CSV filename (short)")
	fs.StringVar(&opts.fromJSON, "from-json", "", "Export a DynamoDB-JSON file instead of scanning a table")
	fs.BoolVar(&opts.listTables, "list-tables", false, "List all available DynamoDB tables")
	fs.BoolVar(&opts.noPrompt, "no-prompt", false, "Never prompt; export without filters unless -filter is given")
	fs.IntVar(&opts.sampleSize, "sample-size", 0, "Number of leading items to analyze")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.logPretty, "log-pretty", false, "Human-readable log output")
	fs.Var(&opts.filters, "filter", "Filter clause, repeatable (attr=value, attr=, attr!=, attr!=value)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ddbexport [flags] [table]\n\nExport DynamoDB table data to CSV.\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprint(stderr, usageExamples)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one table name, got %d", fs.NArg())
	}
	opts.table = fs.Arg(0)
	return opts, nil
}

// apply overrides configuration with the flags the user set.
func (o *options) apply(cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.AWS.Profile, o.profile)
	set(&cfg.AWS.Region, o.region)
	set(&cfg.AWS.Endpoint, o.endpoint)
	set(&cfg.Output, o.output)
	set(&cfg.Input, o.fromJSON)
	set(&cfg.Table, o.table)
	set(&cfg.Log.Level, o.logLevel)
	if o.sampleSize > 0 {
		cfg.SampleSize = o.sampleSize
	}
	if o.logPretty {
		cfg.Log.Pretty = true
	}
	if len(o.filters) > 0 {
		cfg.Filters = o.filters
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.version {
		fmt.Fprintln(stdout, ddbexport.GetVersionInfo())
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	opts.apply(cfg)
	cfg.RegisterAliases()

	root := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		Output: stderr,
	})

	if err := execute(ctx, opts, cfg, root, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// execute runs one invocation. root carries no component field; each
// consumer derives its own tagged child from it.
func execute(ctx context.Context, opts *options, cfg *config.Config, root zerolog.Logger, stdin io.Reader, stdout io.Writer) error {
	sources := ddbexport.DefaultSources()
	prompter := prompt.New(stdin, stdout)
	log := logging.Component(root, "cli")

	if cfg.AWS.Profile != "" {
		log.Info().Str("profile", cfg.AWS.Profile).Msg("using AWS profile")
	}

	if opts.listTables {
		catalog, err := sources.OpenCatalog(ctx, ddbexport.SourceDynamoDB, cfg, root)
		if err != nil {
			return err
		}
		tables, err := catalog.ListTables(ctx)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			fmt.Fprintln(stdout, "No DynamoDB tables found in this region.")
			return nil
		}
		fmt.Fprintf(stdout, "Found %d DynamoDB tables:\n", len(tables))
		for i, name := range tables {
			fmt.Fprintf(stdout, "%2d. %s\n", i+1, name)
		}
		return nil
	}

	sourceName := ddbexport.SourceDynamoDB
	table := cfg.Table
	if cfg.Input != "" {
		sourceName = ddbexport.SourceJSONFile
		table = cfg.Input
	}

	src, err := sources.Open(ctx, sourceName, cfg, root)
	if err != nil {
		return err
	}

	if table == "" {
		if opts.noPrompt {
			return fmt.Errorf("a table name is required with -no-prompt")
		}
		catalog, err := sources.OpenCatalog(ctx, sourceName, cfg, root)
		if err != nil {
			return err
		}
		tables, err := catalog.ListTables(ctx)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			fmt.Fprintln(stdout, "No DynamoDB tables found in this region.")
			return nil
		}
		table, err = prompter.SelectTable(ctx, tables)
		if errors.Is(err, export.ErrAborted) {
			fmt.Fprintln(stdout, "No table selected. Exiting.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	provider, err := clauseProvider(cfg.Filters, opts.noPrompt, prompter)
	if err != nil {
		return err
	}

	pipeline := export.New(src, sink.NewCSVFile(cfg.Output, logging.Component(root, "sink")),
		export.WithClauseProvider(provider),
		export.WithSampleSize(cfg.SampleSize),
		export.WithLogger(logging.Component(root, "export")),
	)

	summary, err := pipeline.Run(ctx, table)
	if err != nil {
		return err
	}
	prompt.PrintSummary(stdout, summary, cfg.Output)
	return nil
}

// clauseProvider prefers filters given up front; otherwise the operator is
// asked after the analysis report.
func clauseProvider(lines []string, noPrompt bool, prompter *prompt.Prompter) (export.ClauseProvider, error) {
	if len(lines) > 0 {
		clauses, err := filter.ParseAll(lines)
		if err != nil {
			return nil, err
		}
		return export.StaticClauses(clauses...), nil
	}
	if noPrompt {
		return export.StaticClauses(), nil
	}
	return prompter, nil
}
