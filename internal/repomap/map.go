// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-map-interface R1; prd006-caching R2.
package repomap

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/petar-djukic/repomap/internal/tags"
	"github.com/petar-djukic/repomap/pkg/types"
)

const defaultMapCacheSize = 32

// Deps carries the collaborators an Engine needs. All fields except
// Root and Counter have working defaults.
type Deps struct {
	Root         string
	Cache        *tags.Cache
	Counter      TokenCounter
	Logger       *slog.Logger
	MapCacheSize int
	MaxWorkers   int
}

// Engine produces repository maps: it scans candidate files for tags,
// ranks definitions by reference structure, and renders the best
// selection that fits a token budget. Safe for sequential reuse; the
// map cache makes repeated identical requests cheap.
type Engine struct {
	deps     Deps
	mapCache *lru.Cache[string, *types.MapResult]
	rankCfg  RankConfig
	warnings []string
}

// NewEngine builds an Engine from deps. Returns an error only if the
// map cache cannot be constructed.
func NewEngine(deps Deps) (*Engine, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Cache == nil {
		deps.Cache = tags.NewCache(nil)
	}
	size := deps.MapCacheSize
	if size <= 0 {
		size = defaultMapCacheSize
	}
	mc, err := lru.New[string, *types.MapResult](size)
	if err != nil {
		return nil, fmt.Errorf("creating map cache: %w", err)
	}
	return &Engine{deps: deps, mapCache: mc}, nil
}

// GetMap renders a repository map of candidates within budget tokens.
// Focus files steer the ranking toward their dependencies but never
// appear in the output. A zero budget yields an empty map; a negative
// budget is an error.
//
// Implements: prd001-map-interface R1.1-R1.4.
func (e *Engine) GetMap(ctx context.Context, candidates []string, focus []string, budget int) (*types.MapResult, error) {
	if budget < 0 {
		return nil, fmt.Errorf("map token budget must be non-negative, got %d", budget)
	}
	result := &types.MapResult{TotalFiles: len(candidates)}
	if budget == 0 || len(candidates) == 0 {
		return result, nil
	}

	scan := tags.Scan(ctx, e.deps.Root, candidates, e.deps.Cache, e.deps.MaxWorkers, e.deps.Logger)
	e.warnings = append(e.warnings, scan.Warnings...)

	focusSet := make(map[string]bool, len(focus))
	for _, f := range focus {
		focusSet[f] = true
	}

	key := e.cacheKey(scan.Signatures, focusSet, budget)
	if cached, hit := e.mapCache.Get(key); hit {
		e.deps.Logger.Debug("map cache hit", "files", len(candidates), "budget", budget)
		return cached, nil
	}

	graph := BuildGraph(scan.TagsByFile, focus)
	scores := Rank(graph, e.rankCfg)
	ranked := Distribute(graph, scores, scan.TagsByFile)

	tagged := make(map[string]bool)
	totalTags := 0
	for f, ts := range scan.TagsByFile {
		if len(ts) > 0 {
			tagged[f] = true
			totalTags += len(ts)
		}
	}
	untagged := untaggedByRank(candidates, tagged, scores)

	rendered := SelectAndRender(ranked, untagged, focusSet, budget, RenderConfig{
		Root:    e.deps.Root,
		Counter: e.deps.Counter,
	})
	rendered.TotalFiles = len(candidates)
	rendered.TotalTags = totalTags
	e.mapCache.Add(key, rendered)
	return rendered, nil
}

// Warnings returns non-fatal problems accumulated across GetMap calls,
// such as files skipped for parse errors.
func (e *Engine) Warnings() []string {
	return e.warnings
}

// Close releases the tag cache's persistent store, if any.
func (e *Engine) Close() error {
	return e.deps.Cache.Close()
}

// cacheKey digests the request so unchanged inputs hit the map cache.
// Files that were unreadable during the scan carry no signature and
// therefore perturb the key, which keeps stale entries from serving.
func (e *Engine) cacheKey(sigs map[string]types.FileSignature, focus map[string]bool, budget int) string {
	paths := make([]string, 0, len(sigs))
	for p := range sigs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	h := sha256.New()
	for _, p := range paths {
		sig := sigs[p]
		fmt.Fprintf(h, "%s|%d|%d\n", p, sig.Size, sig.ModTime)
	}
	focused := make([]string, 0, len(focus))
	for f := range focus {
		focused = append(focused, f)
	}
	sort.Strings(focused)
	h.Write([]byte(strings.Join(focused, "\n")))
	h.Write([]byte("\n" + strconv.Itoa(budget)))
	return hex.EncodeToString(h.Sum(nil))
}

// untaggedByRank orders files without tags by their graph score, best
// first, ties broken by path. These trail the ranked definitions as
// bare path entries.
func untaggedByRank(candidates []string, tagged map[string]bool, scores map[string]float64) []string {
	var out []string
	for _, f := range candidates {
		if !tagged[f] {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := scores[out[i]], scores[out[j]]
		if si != sj {
			return si > sj
		}
		return out[i] < out[j]
	})
	return out
}
