// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular parses slide folder table files into types.Table values.
// CSV is read with the standard library; XLSX goes through GoExcel.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/pdiddy/deckgen/pkg/types"
)

// Read parses a table file, dispatching on extension. The first row is
// always the header.
func Read(path string) (types.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return types.Table{}, fmt.Errorf("%w: unsupported table format %s", types.ErrMalformedData, path)
	}
}

// ReadCSV parses a CSV file. Every record must have the same number of
// fields as the header; a ragged or empty file is malformed data and
// aborts the run.
func ReadCSV(path string) (types.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Table{}, fmt.Errorf("%w: opening %s: %v", types.ErrMalformedData, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// FieldsPerRecord defaults to the width of the first record, so the
	// reader itself rejects inconsistent column counts.
	records, err := r.ReadAll()
	if err != nil {
		return types.Table{}, fmt.Errorf("%w: parsing %s: %v", types.ErrMalformedData, path, err)
	}
	if len(records) == 0 {
		return types.Table{}, fmt.Errorf("%w: %s has no rows", types.ErrMalformedData, path)
	}

	return types.Table{
		Name:   stem(path),
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

// ReadXLSX parses the active sheet of an XLSX workbook. Sheet rows are
// naturally ragged, so short rows are padded to the header width; rows
// wider than the header are malformed.
func ReadXLSX(path string) (types.Table, error) {
	wb, err := gospreadsheet.OpenFile(path)
	if err != nil {
		return types.Table{}, fmt.Errorf("%w: opening %s: %v", types.ErrMalformedData, path, err)
	}

	ws := wb.GetActiveSheet()
	if ws == nil {
		return types.Table{}, fmt.Errorf("%w: %s has no sheets", types.ErrMalformedData, path)
	}

	rows, err := ws.RowIterator()
	if err != nil {
		return types.Table{}, fmt.Errorf("%w: reading %s: %v", types.ErrMalformedData, path, err)
	}
	if len(rows) == 0 {
		return types.Table{}, fmt.Errorf("%w: %s has no rows", types.ErrMalformedData, path)
	}

	all := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			if cell != nil {
				cells = append(cells, cleanCell(cell.GetStringValue()))
			} else {
				cells = append(cells, "")
			}
		}
		all = append(all, cells)
	}

	header := all[0]
	body := make([][]string, 0, len(all)-1)
	for i, row := range all[1:] {
		if len(row) > len(header) {
			return types.Table{}, fmt.Errorf("%w: %s row %d has %d cells, header has %d",
				types.ErrMalformedData, path, i+2, len(row), len(header))
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		body = append(body, row)
	}

	return types.Table{
		Name:   stem(path),
		Header: header,
		Rows:   body,
	}, nil
}

// cleanCell strips zero-width characters and surrounding whitespace that
// spreadsheet exports tend to carry in header cells.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, "​", "")
	return strings.TrimSpace(s)
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
