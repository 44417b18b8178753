// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across repomap packages.
// Implements: prd001-map-interface R5 (shared types).
package types

// TagKind distinguishes symbol definitions from references.
type TagKind int

const (
	Definition TagKind = iota
	Reference
)

// String returns the human-readable name of the tag kind.
func (k TagKind) String() string {
	switch k {
	case Definition:
		return "def"
	case Reference:
		return "ref"
	default:
		return "unknown"
	}
}

// TagCategory identifies the syntactic category of a tagged symbol.
type TagCategory int

const (
	Function TagCategory = iota // Function or method definition
	Class                       // Class, struct, interface, or trait
	Variable                    // Variable or constant
	Module                      // Module or namespace
	Name                        // Bare identifier (references)
)

// String returns the human-readable name of the tag category.
func (c TagCategory) String() string {
	switch c {
	case Function:
		return "function"
	case Class:
		return "class"
	case Variable:
		return "variable"
	case Module:
		return "module"
	case Name:
		return "name"
	default:
		return "unknown"
	}
}

// Tag is a located occurrence of a symbol definition or reference in a
// source file. Tags are immutable once extracted for a given file
// signature; a changed signature regenerates all tags for that file.
//
// Implements: prd002-tag-extraction R1.2.
type Tag struct {
	FilePath string      // Source file path, relative to the repo root
	Name     string      // Symbol name
	Kind     TagKind     // Definition or reference
	Category TagCategory // Syntactic category
	Line     int         // Line of the symbol name (1-based)
	EndLine  int         // Last line of the enclosing definition (1-based)
}

// FileSignature is a cheap modification signature for a source file.
// Two files with equal paths and equal signatures are assumed unchanged.
type FileSignature struct {
	Size    int64 // File size in bytes
	ModTime int64 // Modification time, nanoseconds since epoch
}
