// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tokenizer counts model tokens for budget enforcement.
//
// Implements: prd008-tokenizer R1.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter measures text in model tokens.
type Counter interface {
	Count(text string) int
}

// Tiktoken counts with the cl100k_base encoding, a reasonable
// approximation across current model families.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// New returns a cl100k_base Counter.
func New() (*Tiktoken, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("loading cl100k_base encoding: %w", err)
	}
	return &Tiktoken{enc: enc}, nil
}

// Count returns the number of tokens in text.
func (t *Tiktoken) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

// Estimator approximates token counts from byte length when the real
// encoder is unavailable. It deliberately overestimates so rendered
// maps stay under budget.
type Estimator struct{}

// Count approximates tokens as roughly one per three bytes, rounded up.
func (Estimator) Count(text string) int {
	return (len(text) + 2) / 3
}
