// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/notebook-notes/internal/compile"
	"github.com/pdiddy/notebook-notes/internal/notebook"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile notebook markdown cells into a single document",
	Long: `Compile scans --dir for notebooks matching --pattern, groups them by
topic, and writes every markdown cell to --output under per-topic headings.
The output file is replaced on every run. A notebook that cannot be read
aborts the run before anything is written.

Settings also come from a notebook-notes.yaml config file in the current
directory (or ~/.config/notebook-notes/) and from NOTEBOOK_NOTES_* environment
variables such as NOTEBOOK_NOTES_OUTPUT_PATH. Flags take precedence over both.
Without any of them the defaults scan *.ipynb in the current directory and
write compiled_notes.md.`,
	Args: cobra.NoArgs,
	RunE: runCompile,
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := compileConfig()
	if err != nil {
		return err
	}

	_, err = compile.Run(cfg, notebook.FileReader{}, logger, cmd.OutOrStdout())
	return err
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
