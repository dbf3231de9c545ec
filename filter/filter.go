/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package filter decides which tokens reach an output file.
package filter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/tokenforge/token"
)

// Filter reports whether a token belongs in an output.
type Filter func(tok *token.Token) bool

// ValidTokenName is the registry key of ValidToken.
const ValidTokenName = "validToken"

// EligibleTypes are the token types ValidToken admits. Matching is exact.
var EligibleTypes = []string{
	token.TypeDimension,
	token.TypeString,
	token.TypeNumber,
	token.TypeColor,
	token.TypeCustomSpacing,
	token.TypeCustomGradient,
	token.TypeCustomFontStyle,
	token.TypeCustomRadius,
	token.TypeCustomShadow,
}

// ValidToken rejects tokens in the modes category and admits the rest only
// when their type is eligible.
func ValidToken(tok *token.Token) bool {
	if tok.Attributes.IsCategory(token.CategoryModes) {
		return false
	}
	return slices.Contains(EligibleTypes, tok.Type)
}

// All returns a filter admitting tokens every filter admits.
// Nil filters are skipped.
func All(filters ...Filter) Filter {
	return func(tok *token.Token) bool {
		for _, f := range filters {
			if f != nil && !f(tok) {
				return false
			}
		}
		return true
	}
}

// Apply returns the tokens f admits, in order. A nil filter admits all.
func Apply(tokens []*token.Token, f Filter) []*token.Token {
	if f == nil {
		return slices.Clone(tokens)
	}
	out := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if f(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// MatchAttributes builds a filter from an object such as {type: color}.
//
// Recognized keys: name, type, unit, category, attributes.<field> and
// path[N]. Values compare by their textual form. Unknown keys are an error.
func MatchAttributes(match map[string]any) (Filter, error) {
	checks := make([]Filter, 0, len(match))
	for key, raw := range match {
		want := token.ValueString(raw)
		check, err := fieldCheck(key, want)
		if err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}
	return All(checks...), nil
}

func fieldCheck(key, want string) (Filter, error) {
	switch key {
	case "name":
		return func(tok *token.Token) bool { return tok.Name == want }, nil
	case "type":
		return func(tok *token.Token) bool { return tok.Type == want }, nil
	case "unit":
		return func(tok *token.Token) bool { return tok.Unit == want }, nil
	case "category":
		return func(tok *token.Token) bool { return tok.Attributes.IsCategory(want) }, nil
	}

	if field, ok := strings.CutPrefix(key, "attributes."); ok {
		if _, known := (token.Attributes{}).Get(field); !known {
			return nil, fmt.Errorf("unknown attribute %q in filter", field)
		}
		return func(tok *token.Token) bool {
			got, _ := tok.Attributes.Get(field)
			return got == want
		}, nil
	}

	if rest, ok := strings.CutPrefix(key, "path["); ok {
		idx, err := strconv.Atoi(strings.TrimSuffix(rest, "]"))
		if err != nil || !strings.HasSuffix(rest, "]") || idx < 0 {
			return nil, fmt.Errorf("invalid path index in filter key %q", key)
		}
		return func(tok *token.Token) bool {
			segments := tok.SourceSegments()
			return idx < len(segments) && segments[idx] == want
		}, nil
	}

	return nil, fmt.Errorf("unknown filter key %q", key)
}
