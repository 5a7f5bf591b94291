/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package jsonfile reads items from a DynamoDB JSON export, the
// {"Items": [...]} document produced by `aws dynamodb scan --output json`.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/suparena/ddbexport/attrvalue"
	storeerrors "github.com/suparena/ddbexport/errors"
)

type document struct {
	Items []attrvalue.Item `json:"Items"`
}

// Source serves the items of one export file. The table name passed to Scan
// is ignored; the file is the table.
type Source struct {
	path string
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *Source {
	return &Source{path: path, log: log}
}

// Scan reads and decodes the whole file.
func (s *Source) Scan(ctx context.Context, _ string) ([]attrvalue.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeerrors.NewTransportError("read", s.path, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %v", storeerrors.NewNotFoundError("file", s.path), err)
		}
		return nil, storeerrors.NewTransportError("read", s.path, err)
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, storeerrors.NewTransportError("read", s.path, err)
	}

	s.log.Info().Str("file", s.path).Int("items", len(items)).Msg("total items in JSON")
	return items, nil
}

// Decode parses a {"Items": [...]} document. A document without Items yields
// no items and no error.
func Decode(r io.Reader) ([]attrvalue.Item, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode DynamoDB JSON: %w", err)
	}
	return doc.Items, nil
}
