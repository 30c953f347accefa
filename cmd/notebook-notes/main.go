// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notebook-notes CLI.
//
// Run with no arguments, notebook-notes compiles every *.ipynb file in the
// current directory into compiled_notes.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notebook-notes/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger writes diagnostics to stderr; stdout carries the run summary.
var logger zerolog.Logger

// rootCmd is the base command for the notebook-notes CLI. Without a
// subcommand it runs compile.
var rootCmd = &cobra.Command{
	Use:   "notebook-notes",
	Short: "Compile notebook markdown cells into one notes document",
	Long: `notebook-notes collects the markdown cells of the Jupyter notebooks in a
directory and writes them to a single Markdown document, one section per
topic. A notebook named "Loops.ipynb" holds the main content of topic
"Loops"; "Loops-Solutions.ipynb" holds its solutions.

Running notebook-notes without a subcommand is the same as running compile.
A notebook-notes.yaml file in the current directory and NOTEBOOK_NOTES_*
environment variables are read when present; see "notebook-notes compile --help".`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(viper.GetBool("verbose"))
	},
	RunE: runCompile,
}

// flagKeys maps viper configuration keys to the root persistent flags that
// set them.
var flagKeys = map[string]string{
	"verbose":      "verbose",
	"input_dir":    "dir",
	"pattern":      "pattern",
	"output_path":  "output",
	"title":        "title",
	"description":  "description",
	"on_collision": "on-collision",
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./notebook-notes.yaml or ~/.config/notebook-notes/notebook-notes.yaml)")
	pf.BoolP("verbose", "v", false, "log each classified notebook")
	pf.String("dir", types.DefaultInputDir, "directory scanned for notebooks (not recursive)")
	pf.String("pattern", types.DefaultPattern, "glob matched against file names in --dir")
	pf.StringP("output", "o", types.DefaultOutputPath, "compiled document path (overwritten)")
	pf.String("title", types.DefaultTitle, "document title")
	pf.String("description", types.DefaultDescription, "italic line under the title")
	pf.String("on-collision", string(types.CollisionOverwrite), "when two notebooks claim the same topic and role: overwrite or error")

	for key, name := range flagKeys {
		if err := viper.BindPFlag(key, pf.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notebook-notes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notebook-notes"))
		}
	}

	viper.SetEnvPrefix("NOTEBOOK_NOTES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogger(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// compileConfig assembles the run settings from flags, config file and
// environment, in viper's precedence order.
func compileConfig() (types.CompileConfig, error) {
	var cfg types.CompileConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
