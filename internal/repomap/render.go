// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd005-map-rendering R1, R2, R3;
//
//	docs/ARCHITECTURE § Repository Map.
package repomap

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/petar-djukic/repomap/pkg/types"
)

const (
	maxLineLength  = 100
	elisionMarker  = "⋮"
	lineMarkPrefix = "│"
)

// TokenCounter measures rendered text in model tokens. Implementations
// must be deterministic for a given text.
type TokenCounter interface {
	Count(text string) int
}

// entry is one selectable unit: a definition line in a file, or a bare
// file path for files contributing no tags.
type entry struct {
	path string
	line int // 0 for bare file entries
}

// RenderConfig configures selection and rendering.
type RenderConfig struct {
	Root    string       // Repository root for reading source lines
	Counter TokenCounter // Required
}

// SelectAndRender picks the highest-ranked prefix of tags whose rendered
// form fits the token budget, measured with the real tokenizer at every
// probe. Focus files seed ranking but are excluded from output. Files
// beyond the ranked tags appear as bare path entries when budget allows.
// Output is byte-for-byte reproducible for identical inputs.
//
// Implements: prd005-map-rendering R1.1-R1.7.
func SelectAndRender(ranked []types.RankedTag, untagged []string, focus map[string]bool, budget int, cfg RenderConfig) *types.MapResult {
	result := &types.MapResult{}
	if budget <= 0 {
		return result
	}

	var entries []entry
	for _, rt := range ranked {
		if focus[rt.FilePath] {
			continue
		}
		entries = append(entries, entry{path: rt.FilePath, line: rt.Line})
	}
	for _, f := range untagged {
		if focus[f] {
			continue
		}
		entries = append(entries, entry{path: f})
	}
	if len(entries) == 0 {
		return result
	}

	lines := newLineCache(cfg.Root)

	// The rendered size grows with the prefix length, so binary search
	// finds the largest prefix that still fits.
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		text, _ := renderEntries(entries[:mid], lines)
		if cfg.Counter.Count(text) <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		return result
	}

	text, groups := renderEntries(entries[:lo], lines)
	result.Map = text
	result.Tokens = cfg.Counter.Count(text)
	result.Groups = groups
	result.TagCount = lo
	result.FileCount = len(groups)
	return result
}

// renderEntries renders a selection grouped by file, in first-appearance
// order, with adjacent lines merged and elision markers between gaps.
func renderEntries(selection []entry, lines *lineCache) (string, []types.FileGroup) {
	var order []string
	lois := make(map[string][]int)
	for _, e := range selection {
		if _, seen := lois[e.path]; !seen {
			order = append(order, e.path)
		}
		if e.line > 0 {
			lois[e.path] = append(lois[e.path], e.line)
		} else if lois[e.path] == nil {
			lois[e.path] = []int{}
		}
	}

	var buf strings.Builder
	groups := make([]types.FileGroup, 0, len(order))
	for i, path := range order {
		if i > 0 {
			buf.WriteString("\n")
		}
		if len(lois[path]) == 0 {
			buf.WriteString(path + "\n")
			groups = append(groups, types.FileGroup{Path: path})
			continue
		}
		buf.WriteString(path + ":\n")
		body, ranges := renderFileLines(lines.get(path), lois[path])
		buf.WriteString(body)
		groups = append(groups, types.FileGroup{Path: path, Ranges: ranges})
	}

	return buf.String(), groups
}

// renderFileLines renders the lines of interest of one file: marked
// source lines, contiguous runs merged, an elision marker standing in
// for every skipped region.
func renderFileLines(fileLines []string, lois []int) (string, [][2]int) {
	if len(fileLines) == 0 {
		return "", nil
	}

	sorted := make([]int, 0, len(lois))
	seen := make(map[int]bool)
	for _, l := range lois {
		if l >= 1 && l <= len(fileLines) && !seen[l] {
			seen[l] = true
			sorted = append(sorted, l)
		}
	}
	if len(sorted) == 0 {
		return "", nil
	}
	sort.Ints(sorted)

	var ranges [][2]int
	for _, l := range sorted {
		if len(ranges) > 0 && l == ranges[len(ranges)-1][1]+1 {
			ranges[len(ranges)-1][1] = l
			continue
		}
		ranges = append(ranges, [2]int{l, l})
	}

	var buf strings.Builder
	if ranges[0][0] > 1 {
		buf.WriteString(elisionMarker + "\n")
	}
	for i, r := range ranges {
		if i > 0 {
			buf.WriteString(elisionMarker + "\n")
		}
		for l := r[0]; l <= r[1]; l++ {
			buf.WriteString(lineMarkPrefix + truncateLine(fileLines[l-1]) + "\n")
		}
	}
	if ranges[len(ranges)-1][1] < len(fileLines) {
		buf.WriteString(elisionMarker + "\n")
	}

	return buf.String(), ranges
}

// truncateLine clips a source line at maxLineLength runes, in case of
// minified or generated input.
func truncateLine(line string) string {
	runes := []rune(line)
	if len(runes) <= maxLineLength {
		return line
	}
	return string(runes[:maxLineLength-3]) + "..."
}

// lineCache reads and memoizes file lines for one render pass. Read
// failures render as an empty body; the file header still appears.
type lineCache struct {
	root  string
	files map[string][]string
}

func newLineCache(root string) *lineCache {
	return &lineCache{root: root, files: make(map[string][]string)}
}

func (c *lineCache) get(relPath string) []string {
	if cached, ok := c.files[relPath]; ok {
		return cached
	}
	content, err := os.ReadFile(filepath.Join(c.root, relPath))
	var result []string
	if err == nil {
		result = strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	}
	c.files[relPath] = result
	return result
}
