// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/deckgen/pkg/types"
)

// writePNG encodes a solid-color PNG of the given pixel size into dir.
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 60, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testDeck() *Deck {
	return New("test deck", "tester", types.DefaultLayout())
}

func TestDeck_OneSlidePerFolder(t *testing.T) {
	deck := testDeck()

	table := types.Table{
		Name:   "sales",
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}, {"3", "4"}},
	}
	folder := types.SlideFolder{Name: "slide1"}
	if err := deck.AddFolder(folder, []types.Table{table}); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	img := writePNG(t, dir, "chart.png", 200, 100)
	imgFolder := types.SlideFolder{Name: "slide2", ImageFiles: []string{img}}
	if err := deck.AddFolder(imgFolder, nil); err != nil {
		t.Fatal(err)
	}

	if deck.Slides() != 2 {
		t.Errorf("slides = %d, want 2", deck.Slides())
	}
	if deck.Tables() != 1 {
		t.Errorf("tables = %d, want 1", deck.Tables())
	}
	if deck.Images() != 1 {
		t.Errorf("images = %d, want 1", deck.Images())
	}
}

func TestDeck_TablePagination(t *testing.T) {
	layout := types.DefaultLayout()
	layout.TableRowsPerSlide = 10

	deck := New("paged", "", layout)

	rows := make([][]string, 25)
	for i := range rows {
		rows[i] = []string{"x", "y"}
	}
	table := types.Table{Name: "big", Header: []string{"a", "b"}, Rows: rows}

	if err := deck.AddFolder(types.SlideFolder{Name: "slide1"}, []types.Table{table}); err != nil {
		t.Fatal(err)
	}

	// 25 rows at 10 per slide: primary slide plus two continuations.
	if deck.Slides() != 3 {
		t.Errorf("slides = %d, want 3", deck.Slides())
	}
	if deck.Tables() != 1 {
		t.Errorf("tables = %d, want 1", deck.Tables())
	}
}

func TestDeck_CoverAndClosing(t *testing.T) {
	deck := testDeck()
	deck.AddCover("My Deck", "an experiment")
	if err := deck.AddFolder(types.SlideFolder{Name: "slide1"}, nil); err != nil {
		t.Fatal(err)
	}
	deck.AddClosing()

	if deck.Slides() != 3 {
		t.Errorf("slides = %d, want 3", deck.Slides())
	}
}

func TestDeck_UndecodableImage(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	deck := testDeck()
	err := deck.AddFolder(types.SlideFolder{Name: "slide1", ImageFiles: []string{bad}}, nil)
	if err == nil {
		t.Fatal("expected error for undecodable image")
	}
	if !errors.Is(err, types.ErrMalformedData) {
		t.Errorf("error %v is not ErrMalformedData", err)
	}
}

func TestDeck_BackgroundAndLogoHints(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "bg.png", 960, 540)
	writePNG(t, dir, "logo.png", 300, 120)

	folder := types.SlideFolder{
		Name: "slide1",
		Path: dir,
		Hints: types.LayoutHints{
			Background: "bg.png",
			Logo:       "logo.png",
		},
	}

	deck := testDeck()
	if err := deck.AddFolder(folder, nil); err != nil {
		t.Fatal(err)
	}
	if deck.Slides() != 1 {
		t.Errorf("slides = %d, want 1", deck.Slides())
	}
}

func TestDeck_Bytes(t *testing.T) {
	deck := testDeck()
	if err := deck.AddFolder(types.SlideFolder{Name: "slide1"}, nil); err != nil {
		t.Fatal(err)
	}

	data, err := deck.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty archive")
	}
	// A .pptx is a zip archive.
	if data[0] != 'P' || data[1] != 'K' {
		t.Errorf("output does not start with zip magic, got % x", data[:2])
	}
}

func TestLoadImage_Dimensions(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "img.png", 192, 96)

	img, err := loadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.widthIn != 2.0 {
		t.Errorf("width = %v in, want 2.0", img.widthIn)
	}
	if img.heightIn != 1.0 {
		t.Errorf("height = %v in, want 1.0", img.heightIn)
	}
	if img.mime != "image/png" {
		t.Errorf("mime = %q, want image/png", img.mime)
	}
}
