// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared value types passed between pipeline
// stages: discovered slide folders, parsed tables, layout hints, and
// generator configuration.
package types

import "time"

// SlideFolder describes one input subdirectory discovered under the slides
// root. Files are already partitioned by recognized type; unrecognized
// entries are dropped during scanning.
type SlideFolder struct {
	// Path is the absolute or root-relative folder path.
	Path string `json:"path" yaml:"path"`

	// Name is the folder base name, used as the fallback slide title.
	Name string `json:"name" yaml:"name"`

	// Ordinal is the zero-based position in discovery order.
	Ordinal int `json:"ordinal" yaml:"ordinal"`

	// TableFiles lists tabular inputs (.csv, .xlsx) in name order.
	TableFiles []string `json:"table_files,omitempty" yaml:"table_files,omitempty"`

	// ImageFiles lists raster images (.png, .jpg, .jpeg, .gif) in name
	// order, minus any file claimed as background or logo by the hints.
	ImageFiles []string `json:"image_files,omitempty" yaml:"image_files,omitempty"`

	// Meta holds the parsed meta.txt content, if present.
	Meta Meta `json:"meta" yaml:"meta"`

	// Notes holds the lines of notes.txt or notes.md, if present.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Hints holds the parsed layout.yaml content, if present.
	Hints LayoutHints `json:"hints" yaml:"hints"`
}

// Title returns the slide title: the hint override, then the meta title,
// then the folder name.
func (f SlideFolder) Title() string {
	if f.Hints.Title != "" {
		return f.Hints.Title
	}
	if f.Meta.Title != "" {
		return f.Meta.Title
	}
	return f.Name
}

// Meta is the parsed content of a folder's meta.txt: first non-blank line
// is the title, any remaining non-blank lines form the subtitle.
type Meta struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
}

// LayoutHints carries optional per-folder placement overrides read from
// layout.yaml. All fields are optional; zero values fall back to the
// configured layout defaults.
type LayoutHints struct {
	// Title overrides the slide title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Background names an image file in the folder to stretch across the
	// slide behind other content.
	Background string `json:"background,omitempty" yaml:"background,omitempty"`

	// Logo names an image file in the folder to place bottom-right.
	Logo string `json:"logo,omitempty" yaml:"logo,omitempty"`

	// ImageMaxWidthInches overrides the configured image width cap.
	ImageMaxWidthInches float64 `json:"image_max_width_inches,omitempty" yaml:"image_max_width_inches,omitempty"`
}

// Table is one parsed tabular dataset. Header length defines the column
// count; every body row has exactly len(Header) cells.
type Table struct {
	// Name is the source file stem, used as the table caption.
	Name string `json:"name" yaml:"name"`

	Header []string   `json:"header" yaml:"header"`
	Rows   [][]string `json:"rows" yaml:"rows"`
}

// Columns returns the table width.
func (t Table) Columns() int { return len(t.Header) }

// RunRecord is one row of the generation history ledger.
type RunRecord struct {
	ID         int64     `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	SlidesRoot string    `json:"slides_root"`
	OutputPath string    `json:"output_path"`
	Slides     int       `json:"slides"`
	Tables     int       `json:"tables"`
	Images     int       `json:"images"`
	OutputSHA  string    `json:"output_sha256"`
}
