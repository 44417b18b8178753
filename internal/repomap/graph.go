// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repomap builds the weighted cross-file reference graph, ranks
// it, and renders a token-budgeted map of the highest-value symbols.
// Implements: prd003-reference-graph R1, R2;
//
//	docs/ARCHITECTURE § Repository Map.
package repomap

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/petar-djukic/repomap/pkg/types"
)

const (
	longNameThreshold = 8
	longNameBoost     = 10.0
	tinyNameWeight    = 0.25
	underscoreWeight  = 0.1
	commonDefLimit    = 5
	commonDefFactor   = 0.1
	focusRefBoost     = 50.0
)

// Edge is a directed file→file edge carrying the accumulated weight of
// references in From to a symbol defined in To.
type Edge struct {
	From   string
	To     string
	Ident  string
	Weight float64
}

// Graph is the reference graph over the candidate file set. Nodes are
// files; edges accumulate identifier references. The focus set seeds a
// non-uniform restart distribution during ranking; it does not alter
// edge weights except for the referencer boost.
//
// Implements: prd003-reference-graph R1.1-R1.6.
type Graph struct {
	Nodes []string // sorted candidate files
	Edges []Edge   // sorted by (From, To, Ident)
	Focus map[string]bool

	defs map[string][]string // ident → sorted defining files
}

// BuildGraph constructs the reference graph from per-file tags. A
// reference to a symbol never defined in the candidate set contributes
// no edge, and self-edges are dropped.
//
// Implements: prd003-reference-graph R2.1-R2.6.
func BuildGraph(tagsByFile map[string][]types.Tag, focusFiles []string) *Graph {
	g := &Graph{
		Focus: make(map[string]bool, len(focusFiles)),
		defs:  make(map[string][]string),
	}
	for _, f := range focusFiles {
		g.Focus[f] = true
	}

	g.Nodes = make([]string, 0, len(tagsByFile))
	for f := range tagsByFile {
		g.Nodes = append(g.Nodes, f)
	}
	sort.Strings(g.Nodes)

	defSets := make(map[string]map[string]bool)
	refCounts := make(map[string]map[string]int) // ident → referencer → occurrences

	for _, f := range g.Nodes {
		for _, t := range tagsByFile[f] {
			switch t.Kind {
			case types.Definition:
				if defSets[t.Name] == nil {
					defSets[t.Name] = make(map[string]bool)
				}
				defSets[t.Name][f] = true
			case types.Reference:
				if refCounts[t.Name] == nil {
					refCounts[t.Name] = make(map[string]int)
				}
				refCounts[t.Name][f]++
			}
		}
	}

	// A definitions-only candidate set (some grammars tag no references)
	// still needs a connected graph: let definitions double as references.
	if len(refCounts) == 0 {
		for ident, files := range defSets {
			refCounts[ident] = make(map[string]int, len(files))
			for f := range files {
				refCounts[ident][f] = 1
			}
		}
	}

	for ident, files := range defSets {
		definers := make([]string, 0, len(files))
		for f := range files {
			definers = append(definers, f)
		}
		sort.Strings(definers)
		g.defs[ident] = definers
	}

	idents := make([]string, 0, len(g.defs))
	for ident := range g.defs {
		if refCounts[ident] != nil {
			idents = append(idents, ident)
		}
	}
	sort.Strings(idents)

	for _, ident := range idents {
		definers := g.defs[ident]
		mul := identWeight(ident, len(definers))

		referencers := make([]string, 0, len(refCounts[ident]))
		for f := range refCounts[ident] {
			referencers = append(referencers, f)
		}
		sort.Strings(referencers)

		for _, referencer := range referencers {
			count := refCounts[ident][referencer]
			// Damp high-frequency mentions so they don't dominate.
			scaled := mul * math.Sqrt(float64(count))
			if g.Focus[referencer] {
				scaled *= focusRefBoost
			}
			for _, definer := range definers {
				if definer == referencer {
					continue
				}
				g.Edges = append(g.Edges, Edge{
					From:   referencer,
					To:     definer,
					Ident:  ident,
					Weight: scaled,
				})
			}
		}
	}

	return g
}

// Definers returns the files defining ident, sorted.
func (g *Graph) Definers(ident string) []string {
	return g.defs[ident]
}

// identWeight scores an identifier by how specific it is: long
// snake_case or camelCase names are boosted, private and very short or
// widely-defined names are damped.
//
// Implements: prd003-reference-graph R2.4-R2.5.
func identWeight(ident string, numDefs int) float64 {
	mul := 1.0

	hasAlpha := strings.ContainsFunc(ident, unicode.IsLetter)
	isSnake := hasAlpha && strings.Contains(ident, "_")
	isCamel := strings.ContainsFunc(ident, unicode.IsUpper) &&
		strings.ContainsFunc(ident, unicode.IsLower)

	if (isSnake || isCamel) && len(ident) >= longNameThreshold {
		mul *= longNameBoost
	}
	if len(ident) <= 2 {
		mul *= tinyNameWeight
	}
	if strings.HasPrefix(ident, "_") {
		mul *= underscoreWeight
	}
	if numDefs > commonDefLimit {
		mul *= commonDefFactor
	}

	return mul
}
