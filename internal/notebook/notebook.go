// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook reads notebook files and pulls out their markdown cells.
package notebook

import (
	"encoding/json"
	"errors"
	"os"
	"unicode/utf8"

	"github.com/pdiddy/notebook-notes/pkg/types"
)

// Reader returns the markdown cells of a notebook. The compiler depends on
// this interface so tests can substitute canned content.
type Reader interface {
	// ExtractMarkdown returns the source text of every markdown cell in
	// the notebook at path, in cell order.
	ExtractMarkdown(path string) ([]string, error)
}

// FileReader reads notebooks from the local filesystem.
type FileReader struct{}

// ExtractMarkdown opens path, decodes it and returns one string per
// markdown cell. Code, raw and unknown cells are skipped. Open and decode
// failures are returned as *types.ReadError.
func (FileReader) ExtractMarkdown(path string) ([]string, error) {
	nb, err := Load(path)
	if err != nil {
		return nil, err
	}
	return MarkdownCells(nb), nil
}

// ErrInvalidUTF8 is wrapped in the ReadError for a file that is not UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Load reads the whole file at path and decodes it. The file must be UTF-8;
// trailing data after the top-level object is a decode error.
func Load(path string) (*types.Notebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &types.ReadError{Path: path, Err: ErrInvalidUTF8}
	}

	var nb types.Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, &types.ReadError{Path: path, Err: err}
	}
	return &nb, nil
}

// MarkdownCells returns the joined source of each markdown cell in nb.
func MarkdownCells(nb *types.Notebook) []string {
	cells := make([]string, 0, len(nb.Cells))
	for _, c := range nb.Cells {
		if c.CellType != types.CellMarkdown {
			continue
		}
		cells = append(cells, c.Source.String())
	}
	return cells
}
