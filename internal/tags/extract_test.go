// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package tags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/repomap/internal/lang"
	"github.com/petar-djukic/repomap/pkg/types"
)

func findTag(tags []types.Tag, name string, kind types.TagKind) *types.Tag {
	for i := range tags {
		if tags[i].Name == name && tags[i].Kind == kind {
			return &tags[i]
		}
	}
	return nil
}

func TestExtract_PythonDefinitions(t *testing.T) {
	src := []byte(`def process_request(data):
    return storage_layer(data)

class RequestHandler:
    def handle(self):
        pass
`)
	tags, err := Extract(context.Background(), src, "app.py", lang.Get("python"))
	require.NoError(t, err)

	fn := findTag(tags, "process_request", types.Definition)
	require.NotNil(t, fn, "expected function definition")
	assert.Equal(t, types.Function, fn.Category)
	assert.Equal(t, 1, fn.Line)
	assert.Equal(t, 2, fn.EndLine, "scope should extend to the body")

	cls := findTag(tags, "RequestHandler", types.Definition)
	require.NotNil(t, cls, "expected class definition")
	assert.Equal(t, types.Class, cls.Category)

	ref := findTag(tags, "storage_layer", types.Reference)
	require.NotNil(t, ref, "expected reference to storage_layer")
	assert.Equal(t, 2, ref.Line)
}

func TestExtract_GoDefinitions(t *testing.T) {
	src := []byte(`package math

func Add(a, b int) int {
	return a + b
}

type Calculator struct {
	total int
}

func (c *Calculator) Apply() {
	c.total = Add(c.total, 1)
}
`)
	tags, err := Extract(context.Background(), src, "math.go", lang.Get("go"))
	require.NoError(t, err)

	add := findTag(tags, "Add", types.Definition)
	require.NotNil(t, add)
	assert.Equal(t, types.Function, add.Category)
	assert.Equal(t, 3, add.Line)

	calc := findTag(tags, "Calculator", types.Definition)
	require.NotNil(t, calc)
	assert.Equal(t, types.Class, calc.Category)

	apply := findTag(tags, "Apply", types.Definition)
	require.NotNil(t, apply)

	addRef := findTag(tags, "Add", types.Reference)
	require.NotNil(t, addRef, "call site should produce a reference")
	assert.Equal(t, 12, addRef.Line)
}

func TestExtract_DefinitionNameNotAlsoReference(t *testing.T) {
	src := []byte("def lonely():\n    pass\n")
	tags, err := Extract(context.Background(), src, "a.py", lang.Get("python"))
	require.NoError(t, err)

	for _, tag := range tags {
		if tag.Name == "lonely" {
			assert.Equal(t, types.Definition, tag.Kind,
				"a definition's name node must not double as a reference")
		}
	}
}

func TestExtract_SyntaxErrorReported(t *testing.T) {
	src := []byte("def broken(:\n")
	_, err := Extract(context.Background(), src, "broken.py", lang.Get("python"))
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestExtract_EmptyFile(t *testing.T) {
	tags, err := Extract(context.Background(), nil, "empty.py", lang.Get("python"))
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestExtract_SortedByLine(t *testing.T) {
	src := []byte(`def zebra():
    pass

def alpha():
    pass
`)
	tags, err := Extract(context.Background(), src, "a.py", lang.Get("python"))
	require.NoError(t, err)

	for i := 1; i < len(tags); i++ {
		assert.LessOrEqual(t, tags[i-1].Line, tags[i].Line)
	}
}
