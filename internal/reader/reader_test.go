// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckgen/pkg/types"
)

// writeFile creates a file with parent directories under root.
func writeFile(t *testing.T, root string, rel string, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan_NaturalOrder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"slide10", "slide2", "slide1"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	}

	folders, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, folders, 3)

	assert.Equal(t, "slide1", folders[0].Name)
	assert.Equal(t, "slide2", folders[1].Name)
	assert.Equal(t, "slide10", folders[2].Name)
	for i, f := range folders {
		assert.Equal(t, i, f.Ordinal)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMissingInput))
}

func TestScan_EmptyRoot(t *testing.T) {
	_, err := Scan(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMissingInput))
}

func TestScan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "not-a-dir", "x")

	_, err := Scan(filepath.Join(root, "not-a-dir"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMissingInput))
}

func TestScan_PartitionsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "slide1/sales.csv", "a,b\n1,2\n")
	writeFile(t, root, "slide1/targets.xlsx", "fake")
	writeFile(t, root, "slide1/chart.png", "fake")
	writeFile(t, root, "slide1/photo.JPG", "fake")
	writeFile(t, root, "slide1/readme.docx", "ignored")
	writeFile(t, root, "slide1/.hidden.csv", "ignored")

	folders, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, folders, 1)

	f := folders[0]
	assert.Equal(t, []string{
		filepath.Join(root, "slide1", "sales.csv"),
		filepath.Join(root, "slide1", "targets.xlsx"),
	}, f.TableFiles)
	assert.Equal(t, []string{
		filepath.Join(root, "slide1", "chart.png"),
		filepath.Join(root, "slide1", "photo.JPG"),
	}, f.ImageFiles)
}

func TestScan_MetaAndNotes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "slide1/meta.txt", "Quarterly Sales\n\nRegional breakdown\nFY26 Q2\n")
	writeFile(t, root, "slide1/notes.txt", "first line\n\nsecond line\n")

	folders, err := Scan(root)
	require.NoError(t, err)

	f := folders[0]
	assert.Equal(t, "Quarterly Sales", f.Meta.Title)
	assert.Equal(t, "Regional breakdown FY26 Q2", f.Meta.Subtitle)
	assert.Equal(t, "Quarterly Sales", f.Title())
	assert.Equal(t, []string{"first line", "second line"}, f.Notes)
}

func TestScan_TitleFallsBackToFolderName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "intro"), 0o755))

	folders, err := Scan(root)
	require.NoError(t, err)
	assert.Equal(t, "intro", folders[0].Title())
}

func TestScan_HintsClaimImages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "slide1/layout.yaml", "title: Overview\nbackground: bg.jpg\nlogo: Logo.png\n")
	writeFile(t, root, "slide1/bg.jpg", "fake")
	writeFile(t, root, "slide1/logo.png", "fake")
	writeFile(t, root, "slide1/chart.png", "fake")

	folders, err := Scan(root)
	require.NoError(t, err)

	f := folders[0]
	assert.Equal(t, "Overview", f.Title())
	assert.Equal(t, "bg.jpg", f.Hints.Background)
	// Background and logo are claimed; only the chart remains, with the
	// name match case-insensitive.
	assert.Equal(t, []string{filepath.Join(root, "slide1", "chart.png")}, f.ImageFiles)
}

func TestScan_MalformedLayoutYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "slide1/layout.yaml", "title: [unclosed\n")

	_, err := Scan(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrMalformedData))
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"slide1", "slide2", true},
		{"slide2", "slide10", true},
		{"slide10", "slide2", false},
		{"a", "b", true},
		{"slide1", "slide1", false},
		{"10-intro", "2-body", false},
		{"slide", "slide1", true},
	}
	for _, tt := range tests {
		if got := naturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("naturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
