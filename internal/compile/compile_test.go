// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notebook-notes/internal/notebook"
	"github.com/pdiddy/notebook-notes/internal/outline"
	"github.com/pdiddy/notebook-notes/pkg/types"
)

// fakeReader implements notebook.Reader with canned cells per path.
type fakeReader struct {
	cells map[string][]string
	errs  map[string]error
	calls []string
}

func (f *fakeReader) ExtractMarkdown(path string) ([]string, error) {
	f.calls = append(f.calls, path)
	if err := f.errs[path]; err != nil {
		return nil, err
	}
	return f.cells[path], nil
}

var defaultPreamble = "# Python Learning Materials - Compiled Notes\n\n" +
	"*This document contains markdown content extracted from Jupyter notebooks*\n\n" +
	"---\n\n"

func TestCompile_Empty(t *testing.T) {
	doc, err := Compile(types.TopicMap{}, &fakeReader{}, types.CompileConfig{})
	require.NoError(t, err)
	assert.Equal(t, defaultPreamble, doc.String())
}

func TestCompile_MainAndSolutions(t *testing.T) {
	m := types.TopicMap{
		"Functions": {Name: "Functions", MainFile: "Functions.ipynb", SolutionsFile: "Functions-Solutions.ipynb"},
	}
	r := &fakeReader{cells: map[string][]string{
		"Functions.ipynb":           {"# Intro", "Define with def."},
		"Functions-Solutions.ipynb": {"Answer one"},
	}}

	doc, err := Compile(m, r, types.CompileConfig{})
	require.NoError(t, err)

	want := defaultPreamble +
		"# Functions\n\n" +
		"## Functions - Main Content\n\n" +
		"# Intro\n\nDefine with def.\n\n" +
		"## Functions - Solutions\n\n" +
		"Answer one\n\n" +
		"---\n\n"
	assert.Equal(t, want, doc.String())
	assert.Equal(t, []string{"Functions.ipynb", "Functions-Solutions.ipynb"}, r.calls)
}

func TestCompile_SortsTopicsAndFormatsHeadings(t *testing.T) {
	m := types.TopicMap{
		"Loops":          {Name: "Loops", SolutionsFile: "Loops-Solutions.ipynb"},
		"Data_Types":     {Name: "Data_Types", MainFile: "Data_Types.ipynb"},
		"Error-Handling": {Name: "Error-Handling"},
	}
	r := &fakeReader{cells: map[string][]string{
		"Loops-Solutions.ipynb": {"for x in y"},
		"Data_Types.ipynb":      {},
	}}

	doc, err := Compile(m, r, types.CompileConfig{})
	require.NoError(t, err)

	got := outline.Outline([]byte(doc.String()))
	assert.Equal(t, []outline.Heading{
		{Level: 1, Text: "Python Learning Materials - Compiled Notes"},
		{Level: 1, Text: "Data Types"},
		{Level: 2, Text: "Data Types - Main Content"},
		{Level: 1, Text: "Error Handling"},
		{Level: 1, Text: "Loops"},
		{Level: 2, Text: "Loops - Solutions"},
	}, got)

	// Every topic block closes with a rule, even an empty one.
	assert.Equal(t, 4, strings.Count(doc.String(), "---\n\n"))
	assert.Contains(t, doc.String(), "# Error Handling\n\n---\n\n")
}

func TestCompile_CustomPreamble(t *testing.T) {
	cfg := types.CompileConfig{Title: "Course Notes", Description: "From notebooks"}
	doc, err := Compile(types.TopicMap{}, &fakeReader{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "# Course Notes\n\n*From notebooks*\n\n---\n\n", doc.String())
}

func TestCompile_ReaderErrorAborts(t *testing.T) {
	boom := errors.New("unexpected end of JSON input")
	m := types.TopicMap{
		"A": {Name: "A", MainFile: "A.ipynb"},
		"B": {Name: "B", MainFile: "B.ipynb"},
		"C": {Name: "C", MainFile: "C.ipynb"},
	}
	r := &fakeReader{
		cells: map[string][]string{"A.ipynb": {"ok"}},
		errs:  map[string]error{"B.ipynb": boom},
	}

	doc, err := Compile(m, r, types.CompileConfig{})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, doc)
	assert.Equal(t, []string{"A.ipynb", "B.ipynb"}, r.calls, "compile should stop at the first failure")
}

func TestSummaryPrint(t *testing.T) {
	var buf bytes.Buffer
	Summary{Notebooks: 3, Topics: 2, OutputPath: "compiled_notes.md"}.Print(&buf)
	assert.Equal(t,
		"✓ Processed 3 notebooks\n✓ Found 2 topics\n✓ Compiled markdown written to: compiled_notes.md\n",
		buf.String())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Functions.ipynb"),
		`{"cells": [{"cell_type": "markdown", "source": ["Call ", "functions."]}, {"cell_type": "code", "source": "f()"}]}`)
	writeFile(t, filepath.Join(dir, "Functions-Solutions (1).ipynb"),
		`{"cells": [{"cell_type": "markdown", "source": "Solved."}]}`)
	writeFile(t, filepath.Join(dir, "Basics.ipynb"), `{"cells": []}`)
	writeFile(t, filepath.Join(dir, "readme.md"), "ignored")

	out := filepath.Join(dir, "compiled_notes.md")
	writeFile(t, out, "stale content that must disappear")

	cfg := types.CompileConfig{InputDir: dir, OutputPath: out}
	var stdout bytes.Buffer
	summary, err := Run(cfg, notebook.FileReader{}, zerolog.Nop(), &stdout)
	require.NoError(t, err)

	assert.Equal(t, Summary{Notebooks: 3, Topics: 2, OutputPath: out}, summary)
	assert.Equal(t,
		"✓ Processed 3 notebooks\n✓ Found 2 topics\n✓ Compiled markdown written to: "+out+"\n",
		stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := defaultPreamble +
		"# Basics\n\n## Basics - Main Content\n\n---\n\n" +
		"# Functions\n\n## Functions - Main Content\n\nCall functions.\n\n" +
		"## Functions - Solutions\n\nSolved.\n\n---\n\n"
	assert.Equal(t, want, string(data))

	// A second run over the same inputs produces identical bytes.
	_, err = Run(cfg, notebook.FileReader{}, zerolog.Nop(), &bytes.Buffer{})
	require.NoError(t, err)
	again, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestRun_NoNotebooks(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "compiled_notes.md")

	var stdout bytes.Buffer
	summary, err := Run(types.CompileConfig{InputDir: dir, OutputPath: out}, notebook.FileReader{}, zerolog.Nop(), &stdout)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Notebooks)
	assert.Equal(t, 0, summary.Topics)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, defaultPreamble, string(data))
}

func TestRun_MalformedNotebookWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Good.ipynb"), `{"cells": []}`)
	writeFile(t, filepath.Join(dir, "Bad.ipynb"), `{"cells": [`)
	out := filepath.Join(dir, "compiled_notes.md")

	var stdout bytes.Buffer
	_, err := Run(types.CompileConfig{InputDir: dir, OutputPath: out}, notebook.FileReader{}, zerolog.Nop(), &stdout)
	require.Error(t, err)

	var readErr *types.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, filepath.Join(dir, "Bad.ipynb"), readErr.Path)

	assert.NoFileExists(t, out)
	assert.Empty(t, stdout.String())
}

func TestRun_CollisionError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Loops-Solutions.ipynb"), `{"cells": []}`)
	writeFile(t, filepath.Join(dir, "Loops-Solutions (1).ipynb"), `{"cells": []}`)
	out := filepath.Join(dir, "compiled_notes.md")

	cfg := types.CompileConfig{InputDir: dir, OutputPath: out, OnCollision: types.CollisionAbort}
	_, err := Run(cfg, notebook.FileReader{}, zerolog.Nop(), &bytes.Buffer{})

	var collision *types.CollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "Loops", collision.Topic)
	assert.NoFileExists(t, out)
}

func TestRun_PatternSetsStrippedExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Loops.json"), `{"cells": [{"cell_type": "markdown", "source": "Iterate."}]}`)
	writeFile(t, filepath.Join(dir, "Loops-Solutions.json"), `{"cells": [{"cell_type": "markdown", "source": "Done."}]}`)
	writeFile(t, filepath.Join(dir, ".hidden.json"), "not json")
	out := filepath.Join(dir, "notes.md")

	cfg := types.CompileConfig{InputDir: dir, Pattern: "*.json", OutputPath: out}
	summary, err := Run(cfg, notebook.FileReader{}, zerolog.Nop(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Notebooks)
	assert.Equal(t, 1, summary.Topics)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Loops\n\n## Loops - Main Content\n\nIterate.\n\n## Loops - Solutions\n\nDone.\n\n---\n\n")
}
