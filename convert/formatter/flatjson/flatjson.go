/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/token"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a JSON object keyed by token name, in input order.
func (f *Formatter) Format(tokens []*token.Token, _ formatter.Options) ([]byte, error) {
	if len(tokens) == 0 {
		return []byte("{}"), nil
	}

	entries := make([]string, len(tokens))
	for i, tok := range tokens {
		value, err := formatter.JSONValue(tok.Value, 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tok.Name, err)
		}
		entries[i] = formatter.Indent + formatter.JSONKey(tok.Name) + ": " + value
	}

	return []byte("{\n" + strings.Join(entries, ",\n") + "\n}"), nil
}
