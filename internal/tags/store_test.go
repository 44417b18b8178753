// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tags

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/repomap/pkg/types"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tags.db")
	store, err := OpenStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	sig := types.FileSignature{Size: 123, ModTime: 456}
	tags := []types.Tag{
		{FilePath: "a.go", Name: "Alpha", Kind: types.Definition, Category: types.Function, Line: 3, EndLine: 5},
	}
	store.Put("a.go", sig, tags)

	got, ok := store.Get("a.go", sig)
	require.True(t, ok)
	assert.Equal(t, tags, got)
}

func TestSQLiteStore_SignatureMismatch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tags.db")
	store, err := OpenStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	store.Put("a.go", types.FileSignature{Size: 1, ModTime: 1}, nil)

	_, ok := store.Get("a.go", types.FileSignature{Size: 1, ModTime: 2})
	assert.False(t, ok)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tags.db")
	sig := types.FileSignature{Size: 9, ModTime: 9}
	tags := []types.Tag{{FilePath: "b.go", Name: "Beta", Kind: types.Definition, Line: 1, EndLine: 1}}

	store, err := OpenStore(dbPath)
	require.NoError(t, err)
	store.Put("b.go", sig, tags)
	require.NoError(t, store.Close())

	reopened, err := OpenStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Get("b.go", sig)
	require.True(t, ok, "tags should persist across sessions")
	assert.Equal(t, tags, got)
}

func TestSQLiteStore_ReplaceRow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tags.db")
	store, err := OpenStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	oldSig := types.FileSignature{Size: 1, ModTime: 1}
	newSig := types.FileSignature{Size: 2, ModTime: 2}
	store.Put("a.go", oldSig, []types.Tag{{FilePath: "a.go", Name: "Old", Kind: types.Definition, Line: 1, EndLine: 1}})
	store.Put("a.go", newSig, []types.Tag{{FilePath: "a.go", Name: "New", Kind: types.Definition, Line: 1, EndLine: 1}})

	_, ok := store.Get("a.go", oldSig)
	assert.False(t, ok)

	got, ok := store.Get("a.go", newSig)
	require.True(t, ok)
	assert.Equal(t, "New", got[0].Name)
}
