// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckgen CLI, a batch converter
// that turns a folder-per-slide directory tree into a single .pptx deck.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckgen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the deckgen CLI.
var rootCmd = &cobra.Command{
	Use:   "deckgen",
	Short: "Generate PowerPoint decks from folder-per-slide input trees",
	Long: `deckgen converts a directory containing one subdirectory per slide into a
single .pptx file. Each slide folder may hold CSV or XLSX tables, images,
a meta.txt title, notes, and an optional layout.yaml with placement hints.

Folders become slides in natural name order; the run either produces the
full deck or no output file at all.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckgen.yaml or ~/.config/deckgen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deckgen"))
		}
	}

	viper.SetEnvPrefix("DECKGEN")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setConfigDefaults seeds viper with the built-in generator defaults so
// config files only need to override what they change.
func setConfigDefaults() {
	def := types.DefaultGenerator()

	viper.SetDefault("deck.title", "")
	viper.SetDefault("deck.author", "")
	viper.SetDefault("deck.cover", false)
	viper.SetDefault("deck.closing", false)

	viper.SetDefault("layout.accent_color", def.Layout.AccentColor)
	viper.SetDefault("layout.title_font_size", def.Layout.TitleFontSize)
	viper.SetDefault("layout.heading_font_size", def.Layout.HeadingFontSize)
	viper.SetDefault("layout.body_font_size", def.Layout.BodyFontSize)
	viper.SetDefault("layout.image_max_width_inches", def.Layout.ImageMaxWidthInches)
	viper.SetDefault("layout.table_rows_per_slide", def.Layout.TableRowsPerSlide)
	viper.SetDefault("layout.table_max_columns", def.Layout.TableMaxColumns)

	viper.SetDefault("history.dir", "")
	viper.SetDefault("history.limit", def.History.Limit)
}

// generatorConfig assembles the run configuration from viper, which has
// already merged defaults, config file, and environment.
func generatorConfig() types.GeneratorConfig {
	return types.GeneratorConfig{
		Deck: types.DeckConfig{
			Title:   viper.GetString("deck.title"),
			Author:  viper.GetString("deck.author"),
			Cover:   viper.GetBool("deck.cover"),
			Closing: viper.GetBool("deck.closing"),
		},
		Layout: types.LayoutConfig{
			AccentColor:         viper.GetString("layout.accent_color"),
			TitleFontSize:       viper.GetInt("layout.title_font_size"),
			HeadingFontSize:     viper.GetInt("layout.heading_font_size"),
			BodyFontSize:        viper.GetInt("layout.body_font_size"),
			ImageMaxWidthInches: viper.GetFloat64("layout.image_max_width_inches"),
			TableRowsPerSlide:   viper.GetInt("layout.table_rows_per_slide"),
			TableMaxColumns:     viper.GetInt("layout.table_max_columns"),
		},
		History: types.HistoryConfig{
			Dir:   viper.GetString("history.dir"),
			Limit: viper.GetInt("history.limit"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
