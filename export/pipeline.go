/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package export

import (
	"context"
	goerrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/suparena/ddbexport/attrvalue"
	"github.com/suparena/ddbexport/datastore"
	"github.com/suparena/ddbexport/entity"
	"github.com/suparena/ddbexport/errors"
	"github.com/suparena/ddbexport/filter"
	"github.com/suparena/ddbexport/profile"
)

// ErrAborted is returned by a ClauseProvider when the operator cancels the run.
var ErrAborted = goerrors.New("export aborted by operator")

// Status is the terminal state of a run.
type Status int

const (
	StatusExported Status = iota
	StatusNoItems
	StatusNoMatches
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusExported:
		return "exported"
	case StatusNoItems:
		return "no items"
	case StatusNoMatches:
		return "no matches"
	case StatusAborted:
		return "aborted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Analysis is what the pipeline learned from the sample before filtering.
type Analysis struct {
	Table     string
	Retrieved int
	Schema    profile.Schema
	Patterns  entity.Patterns
}

// ClauseProvider supplies the filter for one run. An empty result passes every
// item; ErrAborted stops the run without output.
type ClauseProvider interface {
	Clauses(ctx context.Context, analysis Analysis) ([]filter.Clause, error)
}

// ClauseFunc adapts a function to ClauseProvider.
type ClauseFunc func(ctx context.Context, analysis Analysis) ([]filter.Clause, error)

func (f ClauseFunc) Clauses(ctx context.Context, analysis Analysis) ([]filter.Clause, error) {
	return f(ctx, analysis)
}

// StaticClauses returns a provider that always yields clauses.
func StaticClauses(clauses ...filter.Clause) ClauseProvider {
	return ClauseFunc(func(context.Context, Analysis) ([]filter.Clause, error) {
		return clauses, nil
	})
}

// Sink receives the complete export once filtering and decoding succeed.
type Sink interface {
	Write(columns []string, rows []attrvalue.Row) error
}

// Summary describes one run.
type Summary struct {
	RunID      uuid.UUID
	Table      string
	Status     Status
	Retrieved  int
	Matched    int
	Columns    []string
	StartedAt  strfmt.DateTime
	FinishedAt strfmt.DateTime
}

// Duration is the wall time of the run.
func (s Summary) Duration() time.Duration {
	return time.Time(s.FinishedAt).Sub(time.Time(s.StartedAt))
}

// Pipeline sequences one export: scan, analyze, filter, decode, write.
type Pipeline struct {
	source     datastore.Source
	sink       Sink
	clauses    ClauseProvider
	detector   *entity.Detector
	sampleSize int
	log        zerolog.Logger
	now        func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClauseProvider sets where filter clauses come from. The default passes
// every item.
func WithClauseProvider(cp ClauseProvider) Option {
	return func(p *Pipeline) {
		p.clauses = cp
	}
}

// WithDetector replaces the entity detector.
func WithDetector(d *entity.Detector) Option {
	return func(p *Pipeline) {
		p.detector = d
	}
}

// WithSampleSize sets how many leading items are profiled.
func WithSampleSize(n int) Option {
	return func(p *Pipeline) {
		p.sampleSize = n
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

// New creates a pipeline reading from source and writing to sink.
func New(source datastore.Source, sink Sink, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:     source,
		sink:       sink,
		clauses:    StaticClauses(),
		detector:   entity.NewDetector(),
		sampleSize: profile.DefaultSampleSize,
		log:        zerolog.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run exports table. Empty scans, empty filter results and operator aborts
// end the run with a terminal Status and a nil error; the sink is only called
// for StatusExported.
func (p *Pipeline) Run(ctx context.Context, table string) (Summary, error) {
	summary := Summary{
		RunID:     uuid.New(),
		Table:     table,
		StartedAt: strfmt.DateTime(p.now().UTC()),
	}
	log := p.log.With().Str("run_id", summary.RunID.String()).Str("table", table).Logger()
	finish := func(status Status) Summary {
		summary.Status = status
		summary.FinishedAt = strfmt.DateTime(p.now().UTC())
		log.Info().
			Stringer("status", status).
			Int("retrieved", summary.Retrieved).
			Int("matched", summary.Matched).
			Int("columns", len(summary.Columns)).
			Dur("elapsed", summary.Duration()).
			Msg("export finished")
		return summary
	}

	items, err := p.source.Scan(ctx, table)
	if err != nil {
		if !errors.IsTransport(err) {
			err = errors.NewTransportError("scan", table, err)
		}
		return summary, err
	}
	summary.Retrieved = len(items)
	log.Info().Int("items", len(items)).Msg("items retrieved")

	if len(items) == 0 {
		return finish(StatusNoItems), nil
	}

	analysis := p.Analyze(table, items)

	clauses, err := p.clauses.Clauses(ctx, analysis)
	if err != nil {
		if goerrors.Is(err, ErrAborted) {
			return finish(StatusAborted), nil
		}
		return summary, fmt.Errorf("failed to collect filters: %w", err)
	}
	for _, c := range clauses {
		log.Debug().Stringer("clause", c).Msg("filter applied")
	}

	matched := filter.Apply(items, clauses)
	summary.Matched = len(matched)
	if len(matched) == 0 {
		return finish(StatusNoMatches), nil
	}

	rows := make([]attrvalue.Row, len(matched))
	for i, item := range matched {
		rows[i] = attrvalue.DecodeItem(item)
	}
	summary.Columns = Columns(rows)

	if err := p.sink.Write(summary.Columns, rows); err != nil {
		return summary, fmt.Errorf("failed to write export: %w", err)
	}
	return finish(StatusExported), nil
}

// Analyze profiles and classifies the leading sample of items.
func (p *Pipeline) Analyze(table string, items []attrvalue.Item) Analysis {
	detector := *p.detector
	detector.SampleSize = p.sampleSize

	return Analysis{
		Table:     table,
		Retrieved: len(items),
		Schema:    profile.Analyze(items, p.sampleSize),
		Patterns:  detector.Detect(items),
	}
}

// Columns returns the sorted union of keys across rows.
func Columns(rows []attrvalue.Row) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			seen[k] = struct{}{}
		}
	}

	columns := make([]string, 0, len(seen))
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}
