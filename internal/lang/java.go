// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"github.com/smacker/go-tree-sitter/java"
)

func init() {
	register(&Language{
		Name:       "java",
		Extensions: []string{".java"},
		lang:       java.GetLanguage(),
		TagsQuery: `
(class_declaration name: (identifier) @definition.class) @scope
(interface_declaration name: (identifier) @definition.class) @scope
(enum_declaration name: (identifier) @definition.class) @scope
(method_declaration name: (identifier) @definition.function) @scope
(constructor_declaration name: (identifier) @definition.function) @scope

(identifier) @reference
(type_identifier) @reference
`,
	})
}
