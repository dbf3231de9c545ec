/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"strings"

	"bennypowers.dev/tokenforge/token"
)

// ResolveName computes the kebab-case identifier of a token: its source
// segments with every segment equal to the token's category removed
// (ignoring case), joined by "-" and lowercased.
//
// Returns "" when no segments remain.
func ResolveName(tok *token.Token) string {
	return strings.Join(nameSegments(tok), "-")
}

// ResolveSnakeName is ResolveName joined by "_".
func ResolveSnakeName(tok *token.Token) string {
	return strings.Join(nameSegments(tok), "_")
}

func nameSegments(tok *token.Token) []string {
	segments := tok.SourceSegments()
	category := tok.Attributes.Category
	out := segments[:0]
	for _, s := range segments {
		if category != "" && strings.EqualFold(s, category) {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}

func prefixed(prefix, sep, name string) string {
	if prefix == "" || name == "" {
		return name
	}
	return strings.ToLower(prefix) + sep + name
}

// NameKebab is the canonical name transform, "name/cti/kebab".
var NameKebab = Transform{
	Name: "name/cti/kebab",
	Kind: KindName,
	Rename: func(tok *token.Token, opts Options) string {
		return prefixed(opts.Prefix, "-", ResolveName(tok))
	},
}

// NameSnake is "name/cti/snake", used for Android resource names.
var NameSnake = Transform{
	Name: "name/cti/snake",
	Kind: KindName,
	Rename: func(tok *token.Token, opts Options) string {
		return prefixed(opts.Prefix, "_", ResolveSnakeName(tok))
	},
}
