// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate orchestrates the pipeline: scan slide folders, compose
// one slide per folder in discovery order, then write the deck once at
// the end. Any stage failure aborts before the writer runs, so a failed
// run never produces an output file.
package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdiddy/deckgen/internal/compose"
	"github.com/pdiddy/deckgen/internal/history"
	"github.com/pdiddy/deckgen/internal/reader"
	"github.com/pdiddy/deckgen/internal/tabular"
	"github.com/pdiddy/deckgen/internal/writer"
	"github.com/pdiddy/deckgen/pkg/types"
)

// Result summarizes a completed generation run.
type Result struct {
	Slides     int
	Tables     int
	Images     int
	OutputPath string
}

// Run converts the slides root into a deck at outputPath, printing
// per-folder progress to w. On success the run is appended to the
// history ledger when cfg.History.Dir is set; ledger failures are
// reported to w but do not fail the run.
func Run(ctx context.Context, cfg types.GeneratorConfig, root, outputPath string, w io.Writer) (Result, error) {
	started := time.Now()

	folders, err := reader.Scan(root)
	if err != nil {
		return Result{}, err
	}

	title := cfg.Deck.Title
	if title == "" {
		title = filepath.Base(root)
	}

	deck := compose.New(title, cfg.Deck.Author, cfg.Layout)

	if cfg.Deck.Cover {
		deck.AddCover(title, cfg.Deck.Author)
	}

	for _, folder := range folders {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		tables := make([]types.Table, 0, len(folder.TableFiles))
		for _, path := range folder.TableFiles {
			table, err := tabular.Read(path)
			if err != nil {
				return Result{}, err
			}
			tables = append(tables, table)
		}

		if err := deck.AddFolder(folder, tables); err != nil {
			return Result{}, err
		}
		fmt.Fprintf(w, "composed: %s (%d tables, %d images)\n",
			folder.Name, len(tables), len(folder.ImageFiles))
	}

	if cfg.Deck.Closing {
		deck.AddClosing()
	}

	data, err := deck.Bytes()
	if err != nil {
		return Result{}, err
	}

	if err := writer.WriteFile(outputPath, data); err != nil {
		return Result{}, err
	}

	result := Result{
		Slides:     deck.Slides(),
		Tables:     deck.Tables(),
		Images:     deck.Images(),
		OutputPath: outputPath,
	}
	fmt.Fprintf(w, "\nWrote %s: %d slides, %d tables, %d images\n",
		outputPath, result.Slides, result.Tables, result.Images)

	if cfg.History.Dir != "" {
		recordRun(ctx, cfg.History.Dir, started, root, result, data, w)
	}
	return result, nil
}

// recordRun appends the run to the ledger. Best effort: the deck is
// already on disk, so ledger problems only warn.
func recordRun(ctx context.Context, dir string, started time.Time, root string, res Result, data []byte, w io.Writer) {
	store, err := history.NewStore(dir)
	if err != nil {
		fmt.Fprintf(w, "warning: history ledger unavailable: %v\n", err)
		return
	}
	defer store.Close()

	sum := sha256.Sum256(data)
	_, err = store.Record(ctx, types.RunRecord{
		StartedAt:  started,
		SlidesRoot: root,
		OutputPath: res.OutputPath,
		Slides:     res.Slides,
		Tables:     res.Tables,
		Images:     res.Images,
		OutputSHA:  hex.EncodeToString(sum[:]),
	})
	if err != nil {
		fmt.Fprintf(w, "warning: recording run: %v\n", err)
	}
}
