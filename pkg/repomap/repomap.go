// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package repomap defines the public interface for repomap, a
// token-budgeted repository map generator for coding agents.
// Implements: prd001-map-interface R1, R2, R3;
//
//	docs/ARCHITECTURE § Map Interface.
package repomap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/petar-djukic/repomap/pkg/types"
)

// Error types for the Mapper API.
//
// Implements: prd001-map-interface R3.1-R3.3.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidBudget = errors.New("invalid token budget")
)

// Config configures a Mapper instance.
//
// Implements: prd001-map-interface R1.1-R1.7.
type Config struct {
	Root         string       // Repository root (required)
	MapTokens    int          // Default token budget for GetMap (default 1024)
	CachePath    string       // Persistent tag cache path (empty = in-memory only)
	Languages    []string     // Restrict discovery to these languages (empty = all)
	Logger       *slog.Logger // Diagnostics sink (nil = stderr, Warn and up)
	MapCacheSize int          // Rendered map LRU entries (default 32)
	MaxWorkers   int          // Parallel scan workers (default GOMAXPROCS)
	Verbose      bool         // Log scan and cache activity at debug level
}

// Mapper renders repository maps within a token budget.
//
// Implements: prd001-map-interface R2.1-R2.4.
type Mapper interface {
	// GetMap scans candidates, ranks definitions against the focus set,
	// and renders the best selection fitting budget tokens. Focus files
	// steer ranking but never appear in the map. A budget of 0 yields
	// an empty map; a negative budget returns ErrInvalidBudget.
	GetMap(ctx context.Context, candidates []string, focus []string, budget int) (*types.MapResult, error)

	// Files lists the candidate source files of the repository, relative
	// to the root, suitable for passing to GetMap.
	Files() ([]string, error)

	// Warnings returns non-fatal problems accumulated across calls, such
	// as files skipped for syntax errors.
	Warnings() []string

	// Close releases the persistent cache, if any.
	Close() error
}
