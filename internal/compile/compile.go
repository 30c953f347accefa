// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compile assembles the markdown cells of grouped notebooks into a
// single notes document.
package compile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/notebook-notes/internal/notebook"
	"github.com/pdiddy/notebook-notes/internal/topics"
	"github.com/pdiddy/notebook-notes/pkg/types"
)

const (
	separator     = "---\n\n"
	cellSeparator = "\n\n"
	mainSuffix    = " - Main Content"
	solnSuffix    = " - Solutions"
)

// Document is an append-only list of text fragments that is flushed to disk
// in one write.
type Document struct {
	fragments []string
}

// Append adds fragments to the end of the document.
func (d *Document) Append(fragments ...string) {
	d.fragments = append(d.fragments, fragments...)
}

// String returns the full document text.
func (d *Document) String() string {
	return strings.Join(d.fragments, "")
}

// Write stores the document at path, replacing any existing content.
func (d *Document) Write(path string) error {
	if err := os.WriteFile(path, []byte(d.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Preamble returns the document header: title, description and a rule.
func Preamble(title, description string) string {
	return "# " + title + "\n\n" + "*" + description + "*\n\n" + separator
}

// Compile builds the notes document for m. Topics are emitted in byte order
// of their names; each gets a level-1 heading, a "Main Content" and a
// "Solutions" section when the matching notebook exists, and a closing
// rule. A notebook that fails to read aborts the compile.
func Compile(m types.TopicMap, r notebook.Reader, cfg types.CompileConfig) (*Document, error) {
	cfg = cfg.WithDefaults()

	doc := &Document{}
	doc.Append(Preamble(cfg.Title, cfg.Description))

	for _, name := range topics.SortedNames(m) {
		entry := m[name]
		heading := topics.DisplayName(name)
		doc.Append("# " + heading + "\n\n")

		if entry.MainFile != "" {
			if err := appendSection(doc, r, heading+mainSuffix, entry.MainFile); err != nil {
				return nil, err
			}
		}
		if entry.SolutionsFile != "" {
			if err := appendSection(doc, r, heading+solnSuffix, entry.SolutionsFile); err != nil {
				return nil, err
			}
		}

		doc.Append(separator)
	}
	return doc, nil
}

func appendSection(doc *Document, r notebook.Reader, heading, path string) error {
	cells, err := r.ExtractMarkdown(path)
	if err != nil {
		return fmt.Errorf("compiling section %q: %w", heading, err)
	}
	doc.Append("## " + heading + "\n\n")
	for _, c := range cells {
		doc.Append(c, cellSeparator)
	}
	return nil
}

// Summary describes a completed run.
type Summary struct {
	Notebooks  int
	Topics     int
	OutputPath string
}

// Print writes the three-line run report to w.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "✓ Processed %d notebooks\n", s.Notebooks)
	fmt.Fprintf(w, "✓ Found %d topics\n", s.Topics)
	fmt.Fprintf(w, "✓ Compiled markdown written to: %s\n", s.OutputPath)
}

// Run discovers notebooks, groups them, compiles the document, writes it to
// cfg.OutputPath and prints the summary to w. Nothing is written when any
// step fails.
func Run(cfg types.CompileConfig, r notebook.Reader, log zerolog.Logger, w io.Writer) (Summary, error) {
	cfg = cfg.WithDefaults()

	paths, err := topics.Discover(cfg.InputDir, cfg.Pattern)
	if err != nil {
		return Summary{}, err
	}
	log.Debug().Str("dir", cfg.InputDir).Str("pattern", cfg.Pattern).Int("count", len(paths)).Msg("discovered notebooks")

	m, err := topics.BuildMap(paths, topics.ExtensionFor(cfg.Pattern), cfg.OnCollision, log)
	if err != nil {
		return Summary{}, err
	}

	doc, err := Compile(m, r, cfg)
	if err != nil {
		return Summary{}, err
	}
	if err := doc.Write(cfg.OutputPath); err != nil {
		return Summary{}, err
	}

	s := Summary{Notebooks: len(paths), Topics: len(m), OutputPath: cfg.OutputPath}
	s.Print(w)
	return s, nil
}
