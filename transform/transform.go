/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides the token transforms applied before formatting:
// attribute derivation, name resolution and value rewriting.
package transform

import "bennypowers.dev/tokenforge/token"

// Kind is the stage a transform runs in.
type Kind int

const (
	// KindAttribute transforms derive token attributes.
	KindAttribute Kind = iota
	// KindName transforms compute the emitted token name.
	KindName
	// KindValue transforms rewrite the token value into a target literal.
	KindValue
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindName:
		return "name"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Options are platform settings visible to transforms.
type Options struct {
	// Prefix is prepended to resolved names.
	Prefix string
}

// Transform is a named, matchable token rewrite.
// Exactly one of Attributes, Rename or Value is set, according to Kind.
type Transform struct {
	Name    string
	Kind    Kind
	Matcher func(tok *token.Token) bool

	Attributes func(tok *token.Token) token.Attributes
	Rename     func(tok *token.Token, opts Options) string
	Value      func(tok *token.Token) any
}

// Matches reports whether the transform applies to tok. A nil Matcher matches all tokens.
func (t Transform) Matches(tok *token.Token) bool {
	return t.Matcher == nil || t.Matcher(tok)
}

// Chain is an ordered list of transforms.
//
// Every matching attribute transform runs, in order. For name and value
// transforms the first match wins and later transforms of that kind are
// skipped, so a value is never rewritten twice.
type Chain []Transform

// Names returns the transform names in order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.Name
	}
	return names
}

// Attributes runs every attribute transform over the tokens.
func (c Chain) Attributes(tokens []*token.Token) {
	for _, t := range c {
		if t.Kind != KindAttribute || t.Attributes == nil {
			continue
		}
		for _, tok := range tokens {
			if t.Matches(tok) {
				tok.Attributes = t.Attributes(tok)
			}
		}
	}
}

// Rename sets each token's Name from the first matching name transform.
// Tokens no name transform matches keep their name.
func (c Chain) Rename(tokens []*token.Token, opts Options) {
	for _, tok := range tokens {
		if t, ok := c.first(KindName, tok); ok && t.Rename != nil {
			tok.Name = t.Rename(tok, opts)
		}
	}
}

// Values rewrites each token's Value with the first matching value transform.
func (c Chain) Values(tokens []*token.Token) {
	for _, tok := range tokens {
		if t, ok := c.first(KindValue, tok); ok && t.Value != nil {
			tok.Value = t.Value(tok)
		}
	}
}

func (c Chain) first(kind Kind, tok *token.Token) (Transform, bool) {
	for _, t := range c {
		if t.Kind == kind && t.Matches(tok) {
			return t, true
		}
	}
	return Transform{}, false
}
