// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"github.com/smacker/go-tree-sitter/rust"
)

func init() {
	register(&Language{
		Name:       "rust",
		Extensions: []string{".rs"},
		lang:       rust.GetLanguage(),
		TagsQuery: `
(function_item name: (identifier) @definition.function) @scope
(struct_item name: (type_identifier) @definition.class) @scope
(enum_item name: (type_identifier) @definition.class) @scope
(trait_item name: (type_identifier) @definition.class) @scope
(mod_item name: (identifier) @definition.module) @scope
(const_item name: (identifier) @definition.variable) @scope
(static_item name: (identifier) @definition.variable) @scope

(identifier) @reference
(type_identifier) @reference
`,
	})
}
