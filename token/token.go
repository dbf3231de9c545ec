/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token model shared by every stage of the
// build pipeline.
package token

import (
	"maps"
	"slices"
	"strings"
)

// Token represents a single design token.
type Token struct {
	// Name is the flat output identifier (e.g., "brand-primary").
	// Before name resolution it may hold a slash-delimited legacy name
	// such as "color/brand/primary".
	Name string `json:"name"`

	// Path is the hierarchical path as declared (e.g., ["color", "brand", "primary"]).
	// Transforms never modify it.
	Path []string `json:"path"`

	// Type classifies the value semantics (color, dimension, custom-shadow, ...).
	Type string `json:"type,omitempty"`

	// Value is the resolved value. Value transforms replace it with a target literal.
	Value any `json:"value"`

	// Unit is an optional hint for unit suffixing (pixel, percent, ...).
	Unit string `json:"unit,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// Attributes classifies the token's origin grouping.
	Attributes Attributes `json:"attributes"`

	// Extensions holds tool provenance metadata.
	Extensions map[string]any `json:"extensions,omitempty"`

	// Original is the value as declared, before reference resolution.
	Original any `json:"-"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`

	// Line is the 0-based line number where this token is defined.
	Line uint32 `json:"-"`

	// Character is the 0-based character offset where this token is defined.
	Character uint32 `json:"-"`
}

// DotPath returns the dot-separated path to this token, the form used by references.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// SourceSegments returns the segments name resolution starts from: the Path
// when set, otherwise the slash-delimited legacy Name split into segments.
func (t *Token) SourceSegments() []string {
	if len(t.Path) > 0 {
		return slices.Clone(t.Path)
	}
	if t.Name == "" {
		return nil
	}
	return strings.Split(t.Name, "/")
}

// Clone returns a deep copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	c.Path = slices.Clone(t.Path)
	c.Value = cloneValue(t.Value)
	c.Original = cloneValue(t.Original)
	if t.Extensions != nil {
		c.Extensions = cloneValue(t.Extensions).(map[string]any)
	}
	return &c
}

// CloneAll returns deep copies of every token, preserving order.
func CloneAll(tokens []*Token) []*Token {
	out := make([]*Token, len(tokens))
	for i, t := range tokens {
		out[i] = t.Clone()
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(x))
		for i, val := range x {
			s[i] = cloneValue(val)
		}
		return s
	case []string:
		return slices.Clone(x)
	case map[string]string:
		return maps.Clone(x)
	default:
		return v
	}
}

// CloneValue returns a deep copy of a token value.
func CloneValue(v any) any {
	return cloneValue(v)
}
