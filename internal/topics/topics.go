// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topics groups notebook files by the topic encoded in their names.
//
// A notebook named "Loops.ipynb" is the main notebook of topic "Loops";
// "Loops-Solutions.ipynb" (or "-solutions") is its answer key. Copies that a
// file manager renamed to "Loops-Solutions (1).ipynb" land on the same topic.
package topics

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/notebook-notes/pkg/types"
)

// Extension is the notebook file suffix stripped before classification
// when the discovery pattern does not name one.
const Extension = ".ipynb"

// ExtensionFor returns the literal suffix of a discovery pattern such as
// "*.json", falling back to Extension when the pattern has no extension or
// its extension contains glob metacharacters.
func ExtensionFor(pattern string) string {
	ext := filepath.Ext(pattern)
	if ext == "" || strings.ContainsAny(ext, `*?[\`) {
		return Extension
	}
	return ext
}

// duplicateMarker starts the suffix file managers append to copies.
const duplicateMarker = " ("

// solutionMarkers are matched case-sensitively, as two separate literals.
var solutionMarkers = []string{"-Solutions", "-solutions"}

// Classify derives the topic and role from a notebook filename. Directory
// components are ignored.
func Classify(filename string) types.Classification {
	return ClassifyExt(filename, Extension)
}

// ClassifyExt is Classify with ext as the suffix stripped from the name.
func ClassifyExt(filename, ext string) types.Classification {
	name := strings.TrimSuffix(filepath.Base(filename), ext)

	at, marker := firstMarker(name)
	if at < 0 {
		return types.Classification{Topic: name, Role: types.RoleMain}
	}

	name = name[:at] + name[at+len(marker):]
	if i := strings.Index(name, duplicateMarker); i >= 0 {
		name = name[:i]
	}
	return types.Classification{Topic: name, Role: types.RoleSolutions}
}

// firstMarker returns the position and text of the earliest solutions
// marker in name, or -1 if there is none.
func firstMarker(name string) (int, string) {
	at, found := -1, ""
	for _, m := range solutionMarkers {
		i := strings.Index(name, m)
		if i >= 0 && (at < 0 || i < at) {
			at, found = i, m
		}
	}
	return at, found
}

// BuildMap classifies paths in order and groups them by topic, stripping ext
// (Extension when empty) from each name. Each path
// fills the main or solutions slot of its topic. When a slot is already
// taken, policy decides: CollisionOverwrite keeps the later path and logs a
// warning, CollisionAbort returns a *types.CollisionError.
func BuildMap(paths []string, ext string, policy types.CollisionPolicy, log zerolog.Logger) (types.TopicMap, error) {
	if ext == "" {
		ext = Extension
	}
	if policy == "" {
		policy = types.CollisionOverwrite
	}
	if policy != types.CollisionOverwrite && policy != types.CollisionAbort {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownPolicy, policy)
	}

	topics := make(types.TopicMap)
	for _, p := range paths {
		c := ClassifyExt(p, ext)

		entry, ok := topics[c.Topic]
		if !ok {
			entry = &types.TopicEntry{Name: c.Topic}
			topics[c.Topic] = entry
		}

		if prev := entry.Slot(c.Role); prev != "" {
			if policy == types.CollisionAbort {
				return nil, &types.CollisionError{
					Topic:    c.Topic,
					Role:     c.Role,
					Existing: prev,
					Incoming: p,
				}
			}
			log.Warn().
				Str("topic", c.Topic).
				Str("role", string(c.Role)).
				Str("discarded", prev).
				Str("kept", p).
				Msg("duplicate notebook for topic, keeping the later file")
		}

		entry.SetSlot(c.Role, p)
		log.Debug().Str("file", p).Str("topic", c.Topic).Str("role", string(c.Role)).Msg("classified")
	}
	return topics, nil
}

// Discover returns the files in dir whose names match pattern, in lexical
// order. Subdirectories are not searched, and directories and hidden files
// (names starting with ".") are skipped. No matches is not an error.
func Discover(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %s in %s: %w", pattern, dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), ".") || isDir(m) {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}
