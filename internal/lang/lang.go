// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lang is the language registry: it maps file extensions to
// tree-sitter grammars and the tag queries run against them. Adding a
// language means registering it here, not touching the extractor.
// Implements: prd002-tag-extraction R2.
package lang

import (
	"sort"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
)

// Capture names recognized by the extractor. Definition captures carry
// the syntactic category as a suffix; the @scope capture marks the whole
// enclosing definition node and provides its end line.
const (
	CaptureDefFunction = "definition.function"
	CaptureDefClass    = "definition.class"
	CaptureDefVariable = "definition.variable"
	CaptureDefModule   = "definition.module"
	CaptureReference   = "reference"
	CaptureScope       = "scope"
)

// Language holds the tree-sitter grammar and tag query for one language.
type Language struct {
	Name       string
	Extensions []string
	TagsQuery  string

	lang      *sitter.Language
	queryOnce sync.Once
	query     *sitter.Query
	queryErr  error
}

// Sitter returns the tree-sitter language pointer.
func (l *Language) Sitter() *sitter.Language {
	return l.lang
}

// Query returns the compiled tag query. Compilation happens once; the
// compiled query is safe to share across goroutines (each goroutine must
// still use its own cursor).
func (l *Language) Query() (*sitter.Query, error) {
	l.queryOnce.Do(func() {
		l.query, l.queryErr = sitter.NewQuery([]byte(l.TagsQuery), l.lang)
	})
	return l.query, l.queryErr
}

// registry maps language names to their configuration. Populated by
// init() functions in the per-language files.
var registry = map[string]*Language{}

func register(l *Language) {
	registry[l.Name] = l
}

var (
	extOnce sync.Once
	extMap  map[string]*Language
)

// ForExtension returns the language registered for a file extension
// (including the leading dot), or nil if the extension is unsupported.
func ForExtension(ext string) *Language {
	extOnce.Do(func() {
		extMap = make(map[string]*Language)
		for _, l := range registry {
			for _, e := range l.Extensions {
				extMap[e] = l
			}
		}
	})
	return extMap[ext]
}

// Names returns the registered language names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the language registered under name, or nil.
func Get(name string) *Language {
	return registry[name]
}
