// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

func init() {
	register(&Language{
		Name:       "typescript",
		Extensions: []string{".ts", ".tsx"},
		lang:       typescript.GetLanguage(),
		TagsQuery: `
(function_declaration name: (identifier) @definition.function) @scope
(class_declaration name: (type_identifier) @definition.class) @scope
(interface_declaration name: (type_identifier) @definition.class) @scope
(method_definition name: (property_identifier) @definition.function) @scope
(variable_declarator name: (identifier) @definition.variable) @scope
(enum_declaration name: (identifier) @definition.class) @scope

(identifier) @reference
(type_identifier) @reference
`,
	})
}
