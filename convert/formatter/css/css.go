/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property formatting for design tokens.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/token"
	"bennypowers.dev/tokenforge/transform"
)

// DefaultSelector is the rule selector used when none is configured.
const DefaultSelector = ":root"

// Options configures the CSS formatter.
type Options struct {
	// RGBCompanions emits an extra "--<name>-rgb" channel triple before
	// each color from the Primitives collection.
	RGBCompanions bool
}

// Formatter outputs CSS custom properties in a single rule.
type Formatter struct {
	opts Options
}

// New creates a new CSS formatter.
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format converts tokens to a CSS rule of custom properties.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	selector := opts.Selector
	if selector == "" {
		selector = DefaultSelector
	}

	lines := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if f.opts.RGBCompanions && tok.Type == token.TypeColor && tok.IsPrimitive() {
			lines = append(lines, fmt.Sprintf("  --%s-rgb: %s;", tok.Name, transform.RGBTriple(tok.Value)))
		}
		lines = append(lines, fmt.Sprintf("  --%s: %s;", tok.Name, token.ValueString(tok.Value)))
	}

	if len(lines) == 0 {
		return []byte(selector + " {\n}"), nil
	}
	return []byte(selector + " {\n" + strings.Join(lines, "\n") + "\n}"), nil
}
