// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notebook-notes/internal/topics"
	"github.com/pdiddy/notebook-notes/pkg/types"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List how notebooks group into topics",
	Long: `Topics classifies the notebooks compile would read and prints one entry
per topic with its main and solutions notebook, sorted by topic name.
Nothing is read from the notebooks and no output file is written.`,
	Args: cobra.NoArgs,
	RunE: runTopics,
}

func runTopics(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := compileConfig()
	if err != nil {
		return err
	}

	paths, err := topics.Discover(cfg.InputDir, cfg.Pattern)
	if err != nil {
		return err
	}
	m, err := topics.BuildMap(paths, topics.ExtensionFor(cfg.Pattern), cfg.OnCollision, logger)
	if err != nil {
		return err
	}

	return formatTopics(cmd.OutOrStdout(), topics.Entries(m), format)
}

func formatTopics(w io.Writer, entries []types.TopicEntry, format string) error {
	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

func init() {
	topicsCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(topicsCmd)
}
