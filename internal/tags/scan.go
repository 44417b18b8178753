// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-tag-extraction R4 (parallel scan).
package tags

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/repomap/internal/lang"
	"github.com/petar-djukic/repomap/pkg/types"
)

const binarySniffLen = 1024

// ScanResult aggregates one scan over the candidate set. Files that
// could not be read are absent from both maps; files with unsupported
// extensions or parse errors are present with nil tags so they can
// still appear, untagged, in the rendered map.
type ScanResult struct {
	TagsByFile map[string][]types.Tag
	Signatures map[string]types.FileSignature
	Warnings   []string
}

// Scan extracts tags for every file in files (paths relative to root),
// consulting the cache first. Extraction runs on a bounded worker pool;
// the cache lock is held only for map reads and writes, never during
// parsing. Per-file failures become warnings, never errors: a canceled
// context stops scheduling and the files already processed remain valid.
//
// Implements: prd002-tag-extraction R4.1-R4.5.
func Scan(ctx context.Context, root string, files []string, cache *Cache, workers int, logger *slog.Logger) *ScanResult {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type fileOutcome struct {
		sig     types.FileSignature
		tags    []types.Tag
		ok      bool
		warning string
	}
	outcomes := make([]fileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, relPath := range files {
		g.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			if gctx.Err() != nil {
				outcomes[i].warning = fmt.Sprintf("skipped %s: %v", relPath, gctx.Err())
				return nil
			}

			absPath := filepath.Join(root, relPath)
			info, err := os.Stat(absPath)
			if err != nil {
				outcomes[i].warning = fmt.Sprintf("cannot stat %s: %v", relPath, err)
				return nil
			}
			sig := types.FileSignature{Size: info.Size(), ModTime: info.ModTime().UnixNano()}
			outcomes[i].sig = sig
			outcomes[i].ok = true

			if cached, hit := cache.Get(relPath, sig); hit {
				outcomes[i].tags = cached
				return nil
			}

			l := lang.ForExtension(filepath.Ext(relPath))
			if l == nil {
				cache.Put(relPath, sig, nil)
				return nil
			}

			content, err := os.ReadFile(absPath)
			if err != nil {
				outcomes[i].ok = false
				outcomes[i].warning = fmt.Sprintf("cannot read %s: %v", relPath, err)
				return nil
			}
			if isBinary(content) {
				cache.Put(relPath, sig, nil)
				return nil
			}

			extracted, err := Extract(gctx, content, relPath, l)
			if err != nil {
				// Parse trouble excludes the file's tags, not the file.
				outcomes[i].warning = fmt.Sprintf("cannot parse %s: %v", relPath, err)
				cache.Put(relPath, sig, nil)
				return nil
			}

			outcomes[i].tags = extracted
			cache.Put(relPath, sig, extracted)
			return nil
		})
	}
	g.Wait()

	result := &ScanResult{
		TagsByFile: make(map[string][]types.Tag, len(files)),
		Signatures: make(map[string]types.FileSignature, len(files)),
	}
	for i, relPath := range files {
		o := outcomes[i]
		if o.warning != "" {
			result.Warnings = append(result.Warnings, o.warning)
			if logger != nil {
				logger.Warn("tag scan", slog.String("file", relPath), slog.String("reason", o.warning))
			}
		}
		if !o.ok {
			continue
		}
		result.TagsByFile[relPath] = o.tags
		result.Signatures[relPath] = o.sig
	}

	return result
}

// isBinary reports whether content looks like binary data (NUL byte in
// the leading window).
func isBinary(content []byte) bool {
	n := len(content)
	if n > binarySniffLen {
		n = binarySniffLen
	}
	return bytes.IndexByte(content[:n], 0) >= 0
}
