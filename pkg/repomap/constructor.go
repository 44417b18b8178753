// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-map-interface R4;
//
//	docs/ARCHITECTURE § Map Interface.
package repomap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/petar-djukic/repomap/internal/gitfiles"
	"github.com/petar-djukic/repomap/internal/lang"
	internalmap "github.com/petar-djukic/repomap/internal/repomap"
	"github.com/petar-djukic/repomap/internal/tags"
	"github.com/petar-djukic/repomap/internal/tokenizer"
	"github.com/petar-djukic/repomap/pkg/types"
)

const defaultMapTokens = 1024

// New validates the config, opens the tag cache, and returns a
// ready-to-use Mapper. It does not scan the repository; that happens
// in GetMap.
//
// Implements: prd001-map-interface R4.1-R4.3.
func New(cfg Config) (Mapper, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	logger := cfg.Logger
	if logger == nil {
		level := slog.LevelWarn
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	var store tags.Store
	if cfg.CachePath != "" {
		s, err := tags.OpenStore(cfg.CachePath)
		if err != nil {
			// Degrade to memory-only caching rather than fail.
			logger.Warn("opening tag cache store", "path", cfg.CachePath, "error", err)
		} else {
			store = s
		}
	}

	var counter internalmap.TokenCounter
	if tk, err := tokenizer.New(); err == nil {
		counter = tk
	} else {
		logger.Warn("tokenizer unavailable, estimating token counts", "error", err)
		counter = tokenizer.Estimator{}
	}

	engine, err := internalmap.NewEngine(internalmap.Deps{
		Root:         cfg.Root,
		Cache:        tags.NewCache(store),
		Counter:      counter,
		Logger:       logger,
		MapCacheSize: cfg.MapCacheSize,
		MaxWorkers:   cfg.MaxWorkers,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &mapperAdapter{engine: engine, cfg: cfg}, nil
}

// mapperAdapter adapts internal/repomap.Engine to the public Mapper
// interface.
type mapperAdapter struct {
	engine *internalmap.Engine
	cfg    Config
}

func (a *mapperAdapter) GetMap(ctx context.Context, candidates []string, focus []string, budget int) (*types.MapResult, error) {
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBudget, budget)
	}
	return a.engine.GetMap(ctx, candidates, focus, budget)
}

func (a *mapperAdapter) Files() ([]string, error) {
	return gitfiles.List(a.cfg.Root, a.cfg.Languages)
}

func (a *mapperAdapter) Warnings() []string {
	return a.engine.Warnings()
}

func (a *mapperAdapter) Close() error {
	return a.engine.Close()
}

// validateConfig checks that required fields are present.
//
// Implements: prd001-map-interface R1.5-R1.7.
func validateConfig(cfg Config) error {
	if cfg.Root == "" {
		return fmt.Errorf("Root is required")
	}
	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		return fmt.Errorf("Root %q does not exist or is not a directory", cfg.Root)
	}
	if cfg.MapTokens < 0 {
		return fmt.Errorf("MapTokens must be non-negative")
	}
	for _, l := range cfg.Languages {
		if lang.Get(l) == nil {
			return fmt.Errorf("unsupported language %q", l)
		}
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MapTokens == 0 {
		cfg.MapTokens = defaultMapTokens
	}
}
