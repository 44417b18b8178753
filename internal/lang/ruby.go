// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package lang

import (
	"github.com/smacker/go-tree-sitter/ruby"
)

func init() {
	register(&Language{
		Name:       "ruby",
		Extensions: []string{".rb"},
		lang:       ruby.GetLanguage(),
		TagsQuery: `
(method name: (identifier) @definition.function) @scope
(singleton_method name: (identifier) @definition.function) @scope
(class name: (constant) @definition.class) @scope
(module name: (constant) @definition.module) @scope

(identifier) @reference
(constant) @reference
`,
	})
}
