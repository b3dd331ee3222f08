// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/deckgen/pkg/types"
)

// writeCSV creates a CSV file in a temp dir and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantHeader []string
		wantRows   int
		wantErr    bool
	}{
		{
			name:       "header and body",
			content:    "a,b\n1,2\n3,4\n",
			wantHeader: []string{"a", "b"},
			wantRows:   2,
		},
		{
			name:       "header only",
			content:    "region,target,actual\n",
			wantHeader: []string{"region", "target", "actual"},
			wantRows:   0,
		},
		{
			name:       "quoted cells with commas",
			content:    "name,note\nwidget,\"cheap, cheerful\"\n",
			wantHeader: []string{"name", "note"},
			wantRows:   1,
		},
		{
			name:    "ragged rows",
			content: "a,b\n1,2,3\n",
			wantErr: true,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "table.csv", tt.content)
			table, err := ReadCSV(path)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, types.ErrMalformedData) {
					t.Errorf("error %v is not ErrMalformedData", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadCSV: %v", err)
			}
			if got := table.Header; len(got) != len(tt.wantHeader) {
				t.Fatalf("header = %v, want %v", got, tt.wantHeader)
			}
			for i, h := range tt.wantHeader {
				if table.Header[i] != h {
					t.Errorf("header[%d] = %q, want %q", i, table.Header[i], h)
				}
			}
			if len(table.Rows) != tt.wantRows {
				t.Errorf("rows = %d, want %d", len(table.Rows), tt.wantRows)
			}
			for i, row := range table.Rows {
				if len(row) != table.Columns() {
					t.Errorf("row %d has %d cells, want %d", i, len(row), table.Columns())
				}
			}
		})
	}
}

func TestReadCSV_StructureRoundTrip(t *testing.T) {
	path := writeCSV(t, "sales.csv", "a,b\n1,2\n3,4\n")
	table, err := ReadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Name != "sales" {
		t.Errorf("name = %q, want %q", table.Name, "sales")
	}
	if table.Columns() != 2 || len(table.Rows) != 2 {
		t.Errorf("shape = %dx%d, want 2x2", len(table.Rows), table.Columns())
	}
	if table.Rows[1][1] != "4" {
		t.Errorf("cell [1][1] = %q, want %q", table.Rows[1][1], "4")
	}
}

func TestRead_Dispatch(t *testing.T) {
	path := writeCSV(t, "data.CSV", "x\n1\n")
	if _, err := Read(path); err != nil {
		t.Errorf("Read(.CSV) failed: %v", err)
	}

	other := writeCSV(t, "data.txt", "x\n1\n")
	_, err := Read(other)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !errors.Is(err, types.ErrMalformedData) {
		t.Errorf("error %v is not ErrMalformedData", err)
	}
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	path := writeCSV(t, "fake.xlsx", "this is not a zip archive")
	_, err := ReadXLSX(path)
	if err == nil {
		t.Fatal("expected error for corrupt workbook")
	}
	if !errors.Is(err, types.ErrMalformedData) {
		t.Errorf("error %v is not ErrMalformedData", err)
	}
}
