// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tags turns source files into symbol tags using tree-sitter,
// and memoizes the results per file signature.
// Implements: prd002-tag-extraction R1, R3;
//
//	docs/ARCHITECTURE § Tag Extraction.
package tags

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/repomap/internal/lang"
	"github.com/petar-djukic/repomap/pkg/types"
)

// ErrSyntax is returned when a file parses with syntax errors. Callers
// treat it as a warning: the file contributes no tags for this run.
var ErrSyntax = errors.New("syntax error")

// Extract parses content and runs the language's tag query, returning
// the definitions and references found. It is a pure function of the
// content and language; it performs no I/O.
//
// Implements: prd002-tag-extraction R1.1-R1.5.
func Extract(ctx context.Context, content []byte, relPath string, l *lang.Language) ([]types.Tag, error) {
	root, err := sitter.ParseCtx(ctx, content, l.Sitter())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relPath, err)
	}
	if root == nil || root.HasError() {
		return nil, fmt.Errorf("%w in %s", ErrSyntax, relPath)
	}

	q, err := l.Query()
	if err != nil {
		return nil, fmt.Errorf("tag query for %s: %w", l.Name, err)
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	type tagKey struct {
		name string
		line int
		kind types.TagKind
	}
	seen := make(map[tagKey]bool)
	defLines := make(map[tagKey]bool) // reference suppression at definition sites

	var out []types.Tag

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}

		// The @scope capture, when present, spans the whole definition.
		endLine := 0
		for _, c := range m.Captures {
			if q.CaptureNameForId(c.Index) == lang.CaptureScope {
				endLine = int(c.Node.EndPoint().Row) + 1
			}
		}

		for _, c := range m.Captures {
			capName := q.CaptureNameForId(c.Index)
			if capName == lang.CaptureScope {
				continue
			}

			name := c.Node.Content(content)
			if name == "" {
				continue
			}
			line := int(c.Node.StartPoint().Row) + 1

			kind, category := classifyCapture(capName)
			key := tagKey{name: name, line: line, kind: kind}
			if seen[key] {
				continue
			}

			tag := types.Tag{
				FilePath: relPath,
				Name:     name,
				Kind:     kind,
				Category: category,
				Line:     line,
				EndLine:  line,
			}
			if kind == types.Definition {
				if endLine > line {
					tag.EndLine = endLine
				}
				defLines[tagKey{name: name, line: line, kind: types.Reference}] = true
			}

			seen[key] = true
			out = append(out, tag)
		}
	}

	// Drop references that are really the name node of a definition.
	filtered := out[:0]
	for _, t := range out {
		if t.Kind == types.Reference && defLines[tagKey{name: t.Name, line: t.Line, kind: types.Reference}] {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Line != filtered[j].Line {
			return filtered[i].Line < filtered[j].Line
		}
		if filtered[i].Kind != filtered[j].Kind {
			return filtered[i].Kind < filtered[j].Kind
		}
		return filtered[i].Name < filtered[j].Name
	})

	return filtered, nil
}

// classifyCapture maps a query capture name to a tag kind and category.
func classifyCapture(capName string) (types.TagKind, types.TagCategory) {
	if capName == lang.CaptureReference {
		return types.Reference, types.Name
	}
	switch strings.TrimPrefix(capName, "definition.") {
	case "function":
		return types.Definition, types.Function
	case "class":
		return types.Definition, types.Class
	case "variable":
		return types.Definition, types.Variable
	case "module":
		return types.Definition, types.Module
	default:
		return types.Reference, types.Name
	}
}
