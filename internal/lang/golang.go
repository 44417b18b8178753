// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"github.com/smacker/go-tree-sitter/golang"
)

func init() {
	register(&Language{
		Name:       "go",
		Extensions: []string{".go"},
		lang:       golang.GetLanguage(),
		TagsQuery: `
(function_declaration name: (identifier) @definition.function) @scope
(method_declaration name: (field_identifier) @definition.function) @scope
(type_declaration (type_spec name: (type_identifier) @definition.class)) @scope
(const_declaration (const_spec name: (identifier) @definition.variable)) @scope
(var_declaration (var_spec name: (identifier) @definition.variable)) @scope

(identifier) @reference
(field_identifier) @reference
(type_identifier) @reference
`,
	})
}
