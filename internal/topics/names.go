// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package topics

import (
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/notebook-notes/pkg/types"
)

var headingReplacer = strings.NewReplacer("_", " ", "-", " ")

// DisplayName turns a topic key into heading text by replacing underscores
// and hyphens with spaces.
func DisplayName(topic string) string {
	return headingReplacer.Replace(topic)
}

// SortedNames returns the topic keys of m in byte order.
func SortedNames(m types.TopicMap) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the entries of m ordered by topic name.
func Entries(m types.TopicMap) []types.TopicEntry {
	names := SortedNames(m)
	entries := make([]types.TopicEntry, len(names))
	for i, name := range names {
		entries[i] = *m[name]
	}
	return entries
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
