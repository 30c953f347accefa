// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline lists the heading structure of a markdown document.
package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one ATX or setext heading of a document.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Outline parses src and returns its top-level headings in document order.
// Headings nested in lists or block quotes are not included.
func Outline(src []byte) []Heading {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var headings []Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  strings.TrimSpace(inlineText(h, src)),
		})
	}
	return headings
}

// inlineText concatenates the text of n's inline descendants.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(inlineText(c, src))
		}
	}
	return b.String()
}

// Filter keeps headings at or above maxLevel. A maxLevel of zero keeps all.
func Filter(headings []Heading, maxLevel int) []Heading {
	if maxLevel <= 0 {
		return headings
	}
	kept := make([]Heading, 0, len(headings))
	for _, h := range headings {
		if h.Level <= maxLevel {
			kept = append(kept, h)
		}
	}
	return kept
}

// Print writes headings to w as an indented tree, two spaces per level.
func Print(w io.Writer, headings []Heading) {
	for _, h := range headings {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
	}
}
