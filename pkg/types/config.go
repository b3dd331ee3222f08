package types

// LayoutConfig holds the styling defaults applied when composing slides.
// The exact placement convention is deliberately configurable rather than
// hard-coded; these defaults follow a 16:9 deck with 96 DPI image scaling.
type LayoutConfig struct {
	// AccentColor is the ARGB color used for decorative bars and headings
	// (e.g. "FF3B82F6").
	AccentColor string `json:"accent_color" yaml:"accent_color"`

	// TitleFontSize is the cover-slide title size in points.
	TitleFontSize int `json:"title_font_size" yaml:"title_font_size"`

	// HeadingFontSize is the per-slide heading size in points.
	HeadingFontSize int `json:"heading_font_size" yaml:"heading_font_size"`

	// BodyFontSize is the default body text size in points.
	BodyFontSize int `json:"body_font_size" yaml:"body_font_size"`

	// ImageMaxWidthInches caps the rendered width of placed images.
	// Images narrower than the cap keep their natural 96 DPI size.
	ImageMaxWidthInches float64 `json:"image_max_width_inches" yaml:"image_max_width_inches"`

	// TableRowsPerSlide is the number of body rows rendered per slide
	// before the table continues on a follow-up slide.
	TableRowsPerSlide int `json:"table_rows_per_slide" yaml:"table_rows_per_slide"`

	// TableMaxColumns truncates very wide tables to keep cells legible.
	TableMaxColumns int `json:"table_max_columns" yaml:"table_max_columns"`
}

// DeckConfig holds deck-level metadata and cover/closing behavior.
type DeckConfig struct {
	// Title is the cover-slide title. Empty means the root folder name.
	Title string `json:"title" yaml:"title"`

	// Author is recorded in the document properties.
	Author string `json:"author" yaml:"author"`

	// Cover controls whether a cover slide is prepended.
	Cover bool `json:"cover" yaml:"cover"`

	// Closing controls whether a closing slide is appended.
	Closing bool `json:"closing" yaml:"closing"`
}

// HistoryConfig holds settings for the generation run ledger.
type HistoryConfig struct {
	// Dir is the directory holding the ledger database (deckgen.db).
	// Empty disables run recording.
	Dir string `json:"dir" yaml:"dir"`

	// Limit is the default maximum number of runs listed (default 20).
	Limit int `json:"limit" yaml:"limit"`
}

// GeneratorConfig groups all settings for a generation run.
type GeneratorConfig struct {
	Deck    DeckConfig    `json:"deck" yaml:"deck"`
	Layout  LayoutConfig  `json:"layout" yaml:"layout"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// DefaultLayout returns the layout defaults used when no config file
// overrides them.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		AccentColor:         "FF3B82F6",
		TitleFontSize:       36,
		HeadingFontSize:     28,
		BodyFontSize:        14,
		ImageMaxWidthInches: 6.0,
		TableRowsPerSlide:   14,
		TableMaxColumns:     8,
	}
}

// DefaultGenerator returns a GeneratorConfig with the default layout.
// Cover and closing slides are opt-in so that N slide folders produce
// exactly N slides unless asked otherwise.
func DefaultGenerator() GeneratorConfig {
	return GeneratorConfig{
		Layout: DefaultLayout(),
		History: HistoryConfig{
			Limit: 20,
		},
	}
}
