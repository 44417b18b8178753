// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tags

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/repomap/pkg/types"
)

func writeScanFiles(t *testing.T, files map[string][]byte) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, content, 0o644))
	}
	return root
}

func TestScan_ExtractsSupportedFiles(t *testing.T) {
	root := writeScanFiles(t, map[string][]byte{
		"app.py": []byte("def handle_request():\n    pass\n"),
	})
	cache := NewCache(nil)

	result := Scan(context.Background(), root, []string{"app.py"}, cache, 2, nil)

	require.Contains(t, result.TagsByFile, "app.py")
	tags := result.TagsByFile["app.py"]
	require.NotEmpty(t, tags)
	assert.Equal(t, "handle_request", tags[0].Name)
	assert.Equal(t, types.Definition, tags[0].Kind)
	assert.Contains(t, result.Signatures, "app.py")
	assert.Empty(t, result.Warnings)
}

func TestScan_UnsupportedExtensionListedWithoutTags(t *testing.T) {
	root := writeScanFiles(t, map[string][]byte{
		"README.md": []byte("# readme\n"),
	})
	cache := NewCache(nil)

	result := Scan(context.Background(), root, []string{"README.md"}, cache, 1, nil)

	require.Contains(t, result.TagsByFile, "README.md")
	assert.Nil(t, result.TagsByFile["README.md"])
	assert.Empty(t, result.Warnings)
}

func TestScan_BinaryFileSkipped(t *testing.T) {
	root := writeScanFiles(t, map[string][]byte{
		"blob.py": {0x00, 0x01, 0x02, 'd', 'e', 'f'},
	})
	cache := NewCache(nil)

	result := Scan(context.Background(), root, []string{"blob.py"}, cache, 1, nil)

	require.Contains(t, result.TagsByFile, "blob.py")
	assert.Nil(t, result.TagsByFile["blob.py"])
}

func TestScan_SyntaxErrorBecomesWarning(t *testing.T) {
	root := writeScanFiles(t, map[string][]byte{
		"broken.py": []byte("def broken(:\n"),
		"good.py":   []byte("def fine():\n    pass\n"),
	})
	cache := NewCache(nil)

	result := Scan(context.Background(), root, []string{"broken.py", "good.py"}, cache, 2, nil)

	// The broken file stays in the set, tagless; the good file is intact.
	require.Contains(t, result.TagsByFile, "broken.py")
	assert.Nil(t, result.TagsByFile["broken.py"])
	assert.NotEmpty(t, result.TagsByFile["good.py"])
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "broken.py")
}

func TestScan_MissingFileBecomesWarning(t *testing.T) {
	root := t.TempDir()
	cache := NewCache(nil)

	result := Scan(context.Background(), root, []string{"ghost.py"}, cache, 1, nil)

	assert.NotContains(t, result.TagsByFile, "ghost.py")
	assert.NotContains(t, result.Signatures, "ghost.py")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "ghost.py")
}

func TestScan_SecondScanHitsCache(t *testing.T) {
	root := writeScanFiles(t, map[string][]byte{
		"app.py": []byte("def cached_fn():\n    pass\n"),
	})
	cache := NewCache(nil)

	first := Scan(context.Background(), root, []string{"app.py"}, cache, 1, nil)
	second := Scan(context.Background(), root, []string{"app.py"}, cache, 1, nil)

	assert.Equal(t, first.TagsByFile, second.TagsByFile)
	stats := cache.Stats()
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
}

func TestScan_ModifiedFileRescanned(t *testing.T) {
	root := writeScanFiles(t, map[string][]byte{
		"app.py": []byte("def first_version():\n    pass\n"),
	})
	cache := NewCache(nil)
	Scan(context.Background(), root, []string{"app.py"}, cache, 1, nil)

	// Rewrite with different content and size; mtime may or may not tick.
	path := filepath.Join(root, "app.py")
	require.NoError(t, os.WriteFile(path, []byte("def second_version_longer():\n    pass\n"), 0o644))

	result := Scan(context.Background(), root, []string{"app.py"}, cache, 1, nil)
	tags := result.TagsByFile["app.py"]
	require.NotEmpty(t, tags)
	assert.Equal(t, "second_version_longer", tags[0].Name)
}

func TestScan_ManyFilesParallel(t *testing.T) {
	files := make(map[string][]byte)
	var names []string
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		name := n + ".py"
		files[name] = []byte("def fn_" + n + "():\n    pass\n")
		names = append(names, name)
	}
	root := writeScanFiles(t, files)
	cache := NewCache(nil)

	result := Scan(context.Background(), root, names, cache, 4, nil)

	assert.Len(t, result.TagsByFile, len(names))
	for _, name := range names {
		assert.NotEmpty(t, result.TagsByFile[name], name)
	}
}
