// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-graph-ranking R1, R2, R3;
//
//	docs/ARCHITECTURE § Repository Map.
package repomap

import (
	"math"
	"sort"

	"github.com/petar-djukic/repomap/pkg/types"
)

const (
	defaultDamping   = 0.85
	defaultMaxIter   = 100
	defaultTolerance = 1e-6

	// Focus files receive this multiple of the baseline restart mass.
	focusRestartMass = 100.0

	// Smoothing keeps unreferenced definitions eligible for inclusion.
	defSmoothing = 0.01
)

// RankConfig configures the PageRank fixed-point iteration.
type RankConfig struct {
	Damping       float64 // default 0.85
	MaxIterations int     // default 100
	Tolerance     float64 // default 1e-6
}

// Rank runs personalized PageRank over the graph and returns a score
// per file. Restart probability is uniform except for focus files,
// which receive focusRestartMass times the baseline; dangling mass is
// redistributed through the same restart distribution. The iteration is
// bounded, so it terminates on any graph, cycles included.
//
// Implements: prd004-graph-ranking R1.1-R1.6.
func Rank(g *Graph, cfg RankConfig) map[string]float64 {
	damping := cfg.Damping
	if damping == 0 {
		damping = defaultDamping
	}
	maxIter := cfg.MaxIterations
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}
	tolerance := cfg.Tolerance
	if tolerance == 0 {
		tolerance = defaultTolerance
	}

	n := len(g.Nodes)
	if n == 0 {
		return nil
	}

	idx := make(map[string]int, n)
	for i, node := range g.Nodes {
		idx[node] = i
	}

	// Restart distribution: focus files get boosted mass, normalized.
	restart := make([]float64, n)
	total := 0.0
	for i, node := range g.Nodes {
		if g.Focus[node] {
			restart[i] = focusRestartMass
		} else {
			restart[i] = 1.0
		}
		total += restart[i]
	}
	for i := range restart {
		restart[i] /= total
	}

	type outEdge struct {
		to     int
		weight float64
	}
	outEdges := make([][]outEdge, n)
	outWeight := make([]float64, n)
	for _, e := range g.Edges {
		from, okF := idx[e.From]
		to, okT := idx[e.To]
		if !okF || !okT {
			continue
		}
		outEdges[from] = append(outEdges[from], outEdge{to: to, weight: e.Weight})
		outWeight[from] += e.Weight
	}

	rank := make([]float64, n)
	for i := range rank {
		rank[i] = 1.0 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		for i := range next {
			next[i] = (1.0 - damping) * restart[i]
		}

		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				// Dangling node: its mass restarts like everything else.
				for j := range next {
					next[j] += damping * rank[i] * restart[j]
				}
				continue
			}
			for _, e := range outEdges[i] {
				next[e.to] += damping * rank[i] * (e.weight / outWeight[i])
			}
		}

		diff := 0.0
		for i := range rank {
			diff += math.Abs(next[i] - rank[i])
		}
		copy(rank, next)
		if diff < tolerance {
			break
		}
	}

	scores := make(map[string]float64, n)
	for i, node := range g.Nodes {
		scores[node] = rank[i]
	}
	return scores
}

// Distribute apportions each file's score across its definition tags,
// proportional to the inbound reference mass each definition attracts.
// Definitions nothing references keep a small smoothed share so they
// stay eligible when the budget allows. The result is sorted by score
// descending, ties broken on (path, line) for determinism.
//
// Implements: prd004-graph-ranking R2.1-R2.4, R3.1.
func Distribute(g *Graph, scores map[string]float64, tagsByFile map[string][]types.Tag) []types.RankedTag {
	// Inbound weighted mass per (file, ident).
	type defKey struct {
		file  string
		ident string
	}
	inMass := make(map[defKey]float64)
	for _, e := range g.Edges {
		inMass[defKey{file: e.To, ident: e.Ident}] += e.Weight
	}

	var ranked []types.RankedTag
	for _, file := range g.Nodes {
		var defs []types.Tag
		for _, t := range tagsByFile[file] {
			if t.Kind == types.Definition {
				defs = append(defs, t)
			}
		}
		if len(defs) == 0 {
			continue
		}

		fileScore := scores[file]
		totalShare := 0.0
		shares := make([]float64, len(defs))
		for i, d := range defs {
			shares[i] = inMass[defKey{file: file, ident: d.Name}] + defSmoothing
			totalShare += shares[i]
		}

		for i, d := range defs {
			ranked = append(ranked, types.RankedTag{
				Tag:   d,
				Score: fileScore * shares[i] / totalShare,
			})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].FilePath != ranked[j].FilePath {
			return ranked[i].FilePath < ranked[j].FilePath
		}
		return ranked[i].Line < ranked[j].Line
	})

	return ranked
}
