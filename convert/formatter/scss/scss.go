/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scss provides SCSS variable formatting for design tokens.
package scss

import (
	"strings"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/token"
)

// Formatter outputs SCSS variables, one per line.
type Formatter struct{}

// New creates a new SCSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to "$name: value;" lines.
func (f *Formatter) Format(tokens []*token.Token, _ formatter.Options) ([]byte, error) {
	lines := make([]string, len(tokens))
	for i, tok := range tokens {
		lines[i] = "$" + tok.Name + ": " + token.ValueString(tok.Value) + ";"
	}
	return []byte(strings.Join(lines, "\n")), nil
}
