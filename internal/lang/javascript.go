// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"github.com/smacker/go-tree-sitter/javascript"
)

func init() {
	register(&Language{
		Name:       "javascript",
		Extensions: []string{".js", ".jsx", ".mjs"},
		lang:       javascript.GetLanguage(),
		TagsQuery: `
(function_declaration name: (identifier) @definition.function) @scope
(class_declaration name: (identifier) @definition.class) @scope
(method_definition name: (property_identifier) @definition.function) @scope
(variable_declarator name: (identifier) @definition.variable) @scope

(identifier) @reference
`,
	})
}
