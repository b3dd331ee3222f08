// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/deckgen/internal/history"
	"github.com/pdiddy/deckgen/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generation runs from the run ledger",
	Long: `History lists decks generated with a configured history directory,
newest first: when they were built, from which slides root, and the
slide, table, and image counts of each output file.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := generatorConfig()
	if dir, _ := cmd.Flags().GetString("history-dir"); dir != "" {
		cfg.History.Dir = dir
	}
	if cfg.History.Dir == "" {
		return fmt.Errorf("no history directory configured: set history.dir or pass --history-dir")
	}

	store, err := history.NewStore(cfg.History.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.History.Limit
	}

	records, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(records, jsonOutput)
}

func formatHistoryOutput(records []types.RunRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-30s  %-30s  %6s  %6s  %6s\n",
		"ID", "Started", "Root", "Output", "Slides", "Tables", "Images")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 112))

	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-30s  %-30s  %6d  %6d  %6d\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			truncate(r.SlidesRoot, 30), truncate(r.OutputPath, 30),
			r.Slides, r.Tables, r.Images)
	}
	return nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return "…" + string(r[len(r)-max+1:])
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().String("history-dir", "", "directory holding the run ledger")

	rootCmd.AddCommand(historyCmd)
}
