/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/suparena/ddbexport/export"
	"github.com/suparena/ddbexport/filter"
)

const rule = "------------------------------------------------------------"

// FilterHelp is shown before filter lines are collected.
const FilterHelp = `Enter filters (press Enter with no input to finish):
Format: attribute_name=value (e.g., EntityType=USER or SK=USER#1)
Use * for wildcard matching (e.g., SK=USER* or PK=*#42)
For empty/null fields: fieldName= (e.g., deletedAt=)
For NOT empty fields: fieldName!= (e.g., deletedAt!=)
For NOT equal: fieldName!=value (e.g., status!=ACTIVE)`

// Prompter drives the interactive parts of an export over a line-oriented
// reader and writer. Reads are served by one background goroutine so a
// canceled context interrupts a pending prompt.
type Prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan string
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) start() {
	p.once.Do(func() {
		p.lines = make(chan string)
		go func() {
			defer close(p.lines)
			for p.in.Scan() {
				p.lines <- p.in.Text()
			}
		}()
	})
}

// readLine returns the next trimmed line. It fails with io.EOF at the end of
// input and with export.ErrAborted (wrapping the context error) when ctx is
// done first.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", export.ErrAborted, err)
	}
	p.start()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", export.ErrAborted, ctx.Err())
	case line, ok := <-p.lines:
		if !ok {
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// SelectTable lists tables and reads a 1-based choice. Entering q, or closing
// the input, returns export.ErrAborted.
func (p *Prompter) SelectTable(ctx context.Context, tables []string) (string, error) {
	if len(tables) == 0 {
		return "", fmt.Errorf("no tables to choose from")
	}

	p.printf("\nFound %d tables:\n%s\n", len(tables), rule)
	for i, t := range tables {
		p.printf("%2d. %s\n", i+1, t)
	}
	p.printf("%s\n", rule)

	for {
		p.printf("\nSelect a table (1-%d) or 'q' to quit: ", len(tables))
		line, err := p.readLine(ctx)
		if err != nil || strings.EqualFold(line, "q") {
			p.printf("\nOperation cancelled.\n")
			return "", export.ErrAborted
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			p.printf("Please enter a valid number or 'q' to quit\n")
			continue
		}
		if n < 1 || n > len(tables) {
			p.printf("Please enter a number between 1 and %d\n", len(tables))
			continue
		}

		p.printf("Selected table: %s\n", tables[n-1])
		return tables[n-1], nil
	}
}

// Clauses shows the analysis report and asks the operator for filters. It
// implements export.ClauseProvider.
func (p *Prompter) Clauses(ctx context.Context, analysis export.Analysis) ([]filter.Clause, error) {
	Report(p.out, analysis)

	p.printf("\nWould you like to filter the data? (y/n): ")
	answer, err := p.readLine(ctx)
	if err == io.EOF {
		return nil, export.ErrAborted
	}
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(strings.ToLower(answer), "y") {
		return nil, nil
	}

	p.printf("\n%s\n", FilterHelp)
	return p.CollectClauses(ctx)
}

// CollectClauses reads one clause per line until a blank line or the end of
// input. Malformed lines are reported and skipped. A canceled context returns
// export.ErrAborted.
func (p *Prompter) CollectClauses(ctx context.Context) ([]filter.Clause, error) {
	var clauses []filter.Clause
	for {
		p.printf("Filter: ")
		line, err := p.readLine(ctx)
		if err == io.EOF || (err == nil && line == "") {
			return clauses, nil
		}
		if err != nil {
			return nil, err
		}

		c, err := filter.Parse(line)
		if err != nil {
			p.printf("Invalid format. Use: attribute_name=value (%v)\n", err)
			continue
		}
		clauses = append(clauses, c)
		p.printf("Added filter: %s (%s)\n", c, c.Mode)
	}
}
