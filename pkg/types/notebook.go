// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CellType tags the kind of content a notebook cell holds.
type CellType string

const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
	CellRaw      CellType = "raw"
)

// Notebook is the decoded form of a notebook file. Only the fields the
// compiler reads are kept; outputs, metadata and format versions are ignored.
type Notebook struct {
	// Cells is the ordered cell list. A file without a cells field decodes
	// to an empty list.
	Cells []Cell `json:"cells"`
}

// Cell is a single notebook cell.
type Cell struct {
	CellType CellType   `json:"cell_type"`
	Source   CellSource `json:"source"`
}

// CellSource holds a cell's source text. On disk it is either a single
// string or a list of string fragments; both decode to the joined text.
type CellSource string

// UnmarshalJSON accepts a string, an array of strings, or null.
func (s *CellSource) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decoding cell source: %w", err)
		}
		*s = CellSource(text)
		return nil
	}

	var fragments []string
	if err := json.Unmarshal(data, &fragments); err != nil {
		return fmt.Errorf("decoding cell source fragments: %w", err)
	}
	*s = CellSource(strings.Join(fragments, ""))
	return nil
}

// String returns the joined source text.
func (s CellSource) String() string {
	return string(s)
}
