package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate <slides-root> <output.pptx>",
	Short: "Convert a folder-per-slide tree into a .pptx deck",
	Long: `Generate scans the slides root for subdirectories, composes one slide per
folder in natural name order, and writes the deck atomically to the output
path. Tables come from CSV or XLSX files (first row is the header), images
are placed at natural 96 DPI size capped to the configured width, and
layout.yaml hints may name background and logo images.

The run is all-or-nothing: any malformed table, undecodable image, or
unwritable destination aborts without leaving a partial output file.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := generatorConfig()

	if v, _ := cmd.Flags().GetString("title"); v != "" {
		cfg.Deck.Title = v
	}
	if v, _ := cmd.Flags().GetString("author"); v != "" {
		cfg.Deck.Author = v
	}
	if cmd.Flags().Changed("cover") {
		cfg.Deck.Cover, _ = cmd.Flags().GetBool("cover")
	}
	if cmd.Flags().Changed("closing") {
		cfg.Deck.Closing, _ = cmd.Flags().GetBool("closing")
	}
	if cmd.Flags().Changed("history-dir") {
		cfg.History.Dir, _ = cmd.Flags().GetString("history-dir")
	}

	_, err := generate.Run(context.Background(), cfg, args[0], args[1], os.Stdout)
	return err
}

func init() {
	generateCmd.Flags().String("title", "", "deck title (default: slides root name)")
	generateCmd.Flags().String("author", "", "deck author, recorded in document properties")
	generateCmd.Flags().Bool("cover", false, "prepend a cover slide")
	generateCmd.Flags().Bool("closing", false, "append a closing slide")
	generateCmd.Flags().String("history-dir", "", "directory for the run ledger (empty disables recording)")

	rootCmd.AddCommand(generateCmd)
}
