/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sink writes decoded rows as a CSV table
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/suparena/ddbexport/attrvalue"
)

// CSVFile writes the export to Path. The file is replaced atomically, so a
// failed run never leaves a partial export behind.
type CSVFile struct {
	Path string
	log  zerolog.Logger
}

// NewCSVFile creates a file sink.
func NewCSVFile(path string, log zerolog.Logger) *CSVFile {
	return &CSVFile{Path: path, log: log}
}

// Write renders the header and every row, then moves the file into place.
func (s *CSVFile) Write(columns []string, rows []attrvalue.Row) (err error) {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = WriteCSV(tmp, columns, rows); err != nil {
		return err
	}
	// CreateTemp opens with 0600; exports are ordinary files.
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to move export into place: %w", err)
	}

	s.log.Info().
		Str("path", s.Path).
		Int("rows", len(rows)).
		Int("columns", len(columns)).
		Msg("export written")
	return nil
}

// WriteCSV writes a header of columns followed by one record per row. Cells
// for columns a row lacks are left empty.
func WriteCSV(w io.Writer, columns []string, rows []attrvalue.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(columns))
	for i, row := range rows {
		for j, col := range columns {
			record[j] = FormatCell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// FormatCell renders one decoded scalar. Integral floats keep a trailing ".0"
// so they stay distinguishable from integers.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
		if abs := math.Abs(x); x != 0 && (abs < 1e-4 || abs >= 1e16) {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return fmt.Sprint(v)
}
