// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"github.com/smacker/go-tree-sitter/python"
)

func init() {
	register(&Language{
		Name:       "python",
		Extensions: []string{".py"},
		lang:       python.GetLanguage(),
		TagsQuery: `
(function_definition name: (identifier) @definition.function) @scope
(class_definition name: (identifier) @definition.class) @scope

(identifier) @reference
`,
	})
}
