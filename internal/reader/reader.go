// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reader discovers slide folders under a slides root and loads
// their recognized contents: tabular files, images, meta.txt titles,
// notes, and layout.yaml placement hints.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deckgen/pkg/types"
)

const (
	metaFile   = "meta.txt"
	layoutFile = "layout.yaml"
)

// notesFiles are checked in order; the first one present wins.
var notesFiles = []string{"notes.txt", "notes.md"}

// tableExts and imageExts define the recognized content types. Anything
// else in a slide folder is ignored, not an error.
var (
	tableExts = map[string]bool{".csv": true, ".xlsx": true}
	imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}
)

// Scan walks the slides root and returns one SlideFolder per subdirectory,
// in natural name order. It fails with types.ErrMissingInput when the root
// does not exist or contains no subdirectories at all.
func Scan(root string) ([]types.SlideFolder, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: slides root %s: %v", types.ErrMissingInput, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: slides root %s is not a directory", types.ErrMissingInput, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: reading slides root %s: %v", types.ErrMissingInput, root, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no slide folders under %s", types.ErrMissingInput, root)
	}

	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})

	folders := make([]types.SlideFolder, 0, len(names))
	for i, name := range names {
		folder, err := loadFolder(filepath.Join(root, name), name, i)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, nil
}

// loadFolder partitions a single folder's files and loads its meta, notes,
// and layout hints.
func loadFolder(dir, name string, ordinal int) (types.SlideFolder, error) {
	folder := types.SlideFolder{Path: dir, Name: name, Ordinal: ordinal}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return folder, fmt.Errorf("%w: reading slide folder %s: %v", types.ErrMissingInput, dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		switch {
		case tableExts[ext]:
			folder.TableFiles = append(folder.TableFiles, filepath.Join(dir, e.Name()))
		case imageExts[ext]:
			folder.ImageFiles = append(folder.ImageFiles, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(folder.TableFiles)
	sort.Strings(folder.ImageFiles)

	folder.Meta = readMeta(dir)
	folder.Notes = readNotes(dir)

	hints, err := readHints(dir)
	if err != nil {
		return folder, err
	}
	folder.Hints = hints

	// Background and logo files are placed specially, not stacked with
	// the regular images.
	folder.ImageFiles = excludeHinted(folder.ImageFiles, hints)

	return folder, nil
}

// readMeta parses meta.txt: first non-blank line is the title, remaining
// non-blank lines join into the subtitle. A missing or unreadable file
// simply yields an empty Meta.
func readMeta(dir string) types.Meta {
	data, err := os.ReadFile(filepath.Join(dir, metaFile))
	if err != nil {
		return types.Meta{}
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) == 0 {
		return types.Meta{}
	}
	return types.Meta{
		Title:    lines[0],
		Subtitle: strings.Join(lines[1:], " "),
	}
}

// readNotes returns the non-blank lines of the folder's notes file.
func readNotes(dir string) []string {
	for _, name := range notesFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var lines []string
		for _, line := range strings.Split(string(data), "\n") {
			if s := strings.TrimRight(line, " \t\r"); s != "" {
				lines = append(lines, s)
			}
		}
		return lines
	}
	return nil
}

// readHints parses layout.yaml. A missing file is fine; a file that does
// not parse is malformed input and aborts the run.
func readHints(dir string) (types.LayoutHints, error) {
	path := filepath.Join(dir, layoutFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return types.LayoutHints{}, nil
	}
	var hints types.LayoutHints
	if err := yaml.Unmarshal(data, &hints); err != nil {
		return types.LayoutHints{}, fmt.Errorf("%w: parsing %s: %v", types.ErrMalformedData, path, err)
	}
	return hints, nil
}

// excludeHinted drops the background and logo files from the regular image
// list so they are not placed twice.
func excludeHinted(images []string, hints types.LayoutHints) []string {
	claimed := map[string]bool{}
	for _, name := range []string{hints.Background, hints.Logo} {
		if name != "" {
			claimed[strings.ToLower(name)] = true
		}
	}
	if len(claimed) == 0 {
		return images
	}
	var kept []string
	for _, img := range images {
		if !claimed[strings.ToLower(filepath.Base(img))] {
			kept = append(kept, img)
		}
	}
	return kept
}

// naturalLess orders names so that embedded digit runs compare numerically:
// slide2 sorts before slide10. Ties fall back to plain string order.
func naturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		ad, bd := digitPrefix(a), digitPrefix(b)
		if ad > 0 && bd > 0 {
			an, bn := numValue(a[:ad]), numValue(b[:bd])
			if an != bn {
				return an < bn
			}
			a, b = a[ad:], b[bd:]
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

// digitPrefix returns the length of the leading digit run in s.
func digitPrefix(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// numValue parses a digit run; runs long enough to overflow int64 are
// capped, which still orders them after any shorter run.
func numValue(s string) int64 {
	var n int64
	for i := 0; i < len(s); i++ {
		if n > (1<<62)/10 {
			return 1 << 62
		}
		n = n*10 + int64(s[i]-'0')
	}
	return n
}
