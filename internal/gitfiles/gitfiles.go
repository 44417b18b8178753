// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitfiles discovers candidate source files for mapping.
//
// Implements: prd007-file-discovery R1, R2.
package gitfiles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/petar-djukic/repomap/internal/lang"
)

var skipDirs = map[string]struct{}{
	".git":         {},
	".hg":          {},
	".svn":         {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
	"venv":         {},
	".venv":        {},
	"build":        {},
	"dist":         {},
	"target":       {},
}

// List returns the repository-relative paths of source files under root
// with a supported language extension, sorted. Inside a git repository
// the committed tree is authoritative; elsewhere the tree is walked
// with .gitignore rules applied. If languages is non-empty, only files
// of the named languages are returned.
func List(root string, languages []string) ([]string, error) {
	keep := langFilter(languages)
	if files, ok := committedFiles(root, keep); ok {
		return files, nil
	}
	return walkFiles(root, keep)
}

// langFilter reports whether a path's language is wanted. An empty
// language list admits every supported language.
func langFilter(languages []string) func(string) bool {
	if len(languages) == 0 {
		return func(name string) bool {
			return lang.ForExtension(filepath.Ext(name)) != nil
		}
	}
	wanted := make(map[string]struct{}, len(languages))
	for _, l := range languages {
		wanted[l] = struct{}{}
	}
	return func(name string) bool {
		l := lang.ForExtension(filepath.Ext(name))
		if l == nil {
			return false
		}
		_, ok := wanted[l.Name]
		return ok
	}
}

// committedFiles lists supported files from the HEAD tree of the
// repository at root. Returns ok=false when root is not a repository
// or has no commits yet.
func committedFiles(root string, keep func(string) bool) ([]string, bool) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return nil, false
	}
	head, err := repo.Head()
	if err != nil {
		return nil, false
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, false
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, false
	}

	var files []string
	err = tree.Files().ForEach(func(f *object.File) error {
		if keep(f.Name) {
			files = append(files, f.Name)
		}
		return nil
	})
	if err != nil {
		return nil, false
	}
	sort.Strings(files)
	return files, true
}

// walkFiles discovers supported files by walking root, honoring a root
// .gitignore and skipping dependency and build directories.
func walkFiles(root string, keep func(string) bool) ([]string, error) {
	gi := loadGitignore(root)

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		if !keep(name) {
			return nil
		}

		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
