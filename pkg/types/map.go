// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-map-interface R3, prd004-graph-ranking R4.
package types

// RankedTag is a definition tag plus the share of its file's graph rank
// apportioned to it.
type RankedTag struct {
	Tag
	Score float64
}

// FileGroup is one file's contribution to a rendered map: the path and
// the merged, ascending line ranges included for it. Untagged files
// appear with no ranges.
type FileGroup struct {
	Path   string
	Ranges [][2]int
}

// MapResult holds a rendered repository map and selection metadata.
type MapResult struct {
	Map        string      // Rendered map text
	Tokens     int         // Token count of Map as measured by the tokenizer
	Groups     []FileGroup // Per-file line ranges, in output order
	TagCount   int         // Number of ranked tags included
	FileCount  int         // Number of files appearing in the map
	TotalFiles int         // Total candidate files considered
	TotalTags  int         // Total definition tags extracted
}
