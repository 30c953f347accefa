// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notebook-notes/internal/outline"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Print the heading tree of a compiled document",
	Long: `Outline parses a Markdown document (the compiled output by default) and
prints its top-level headings as an indented tree. Use --max-level 1 to list
only the topics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOutline,
}

func runOutline(cmd *cobra.Command, args []string) error {
	maxLevel, _ := cmd.Flags().GetInt("max-level")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := compileConfig()
	if err != nil {
		return err
	}
	path := cfg.OutputPath
	if len(args) > 0 {
		path = args[0]
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	headings := outline.Filter(outline.Outline(src), maxLevel)
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(headings)
	}
	outline.Print(cmd.OutOrStdout(), headings)
	return nil
}

func init() {
	outlineCmd.Flags().Int("max-level", 0, "deepest heading level to print (0 = all)")
	outlineCmd.Flags().Bool("json", false, "output headings as JSON")

	rootCmd.AddCommand(outlineCmd)
}
