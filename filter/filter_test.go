/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenforge/filter"
	"bennypowers.dev/tokenforge/token"
)

func TestValidToken(t *testing.T) {
	tests := []struct {
		name     string
		tok      *token.Token
		expected bool
	}{
		{"color", &token.Token{Type: token.TypeColor}, true},
		{"dimension", &token.Token{Type: token.TypeDimension}, true},
		{"custom font style", &token.Token{Type: "custom-fontStyle"}, true},
		{"type match is case-sensitive", &token.Token{Type: "custom-fontstyle"}, false},
		{"boolean is not eligible", &token.Token{Type: token.TypeBoolean}, false},
		{"missing type", &token.Token{}, false},
		{
			"modes category excluded",
			&token.Token{Type: token.TypeColor, Attributes: token.Attributes{Category: "modes"}},
			false,
		},
		{
			"modes category ignores case",
			&token.Token{Type: token.TypeColor, Attributes: token.Attributes{Category: "Modes"}},
			false,
		},
		{
			"other category kept",
			&token.Token{Type: token.TypeColor, Attributes: token.Attributes{Category: "color"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.ValidToken(tt.tok))
		})
	}
}

func TestValidToken_EveryEligibleType(t *testing.T) {
	for _, typ := range filter.EligibleTypes {
		assert.True(t, filter.ValidToken(&token.Token{Type: typ}), typ)
	}
}

func TestMatchAttributes(t *testing.T) {
	tokens := []*token.Token{
		{Name: "brand-primary", Path: []string{"color", "brand", "primary"}, Type: token.TypeColor, Attributes: token.Attributes{Category: "color", Type: "brand"}},
		{Name: "small", Path: []string{"spacing", "small"}, Type: token.TypeDimension, Unit: token.UnitPixel},
	}

	tests := []struct {
		name     string
		match    map[string]any
		expected []string
	}{
		{"by type", map[string]any{"type": "color"}, []string{"brand-primary"}},
		{"by unit", map[string]any{"unit": "pixel"}, []string{"small"}},
		{"by category", map[string]any{"category": "COLOR"}, []string{"brand-primary"}},
		{"by attribute", map[string]any{"attributes.type": "brand"}, []string{"brand-primary"}},
		{"by path segment", map[string]any{"path[0]": "spacing"}, []string{"small"}},
		{"conjunction", map[string]any{"type": "color", "name": "small"}, []string{}},
		{"empty matches all", map[string]any{}, []string{"brand-primary", "small"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := filter.MatchAttributes(tt.match)
			require.NoError(t, err)

			got := []string{}
			for _, tok := range filter.Apply(tokens, f) {
				got = append(got, tok.Name)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchAttributes_Errors(t *testing.T) {
	for _, key := range []string{"colour", "attributes.shade", "path[x]", "path[1"} {
		_, err := filter.MatchAttributes(map[string]any{key: "v"})
		assert.Error(t, err, key)
	}
}

func TestAll(t *testing.T) {
	isColor, err := filter.MatchAttributes(map[string]any{"type": "color"})
	require.NoError(t, err)

	f := filter.All(filter.ValidToken, isColor, nil)

	assert.True(t, f(&token.Token{Type: token.TypeColor}))
	assert.False(t, f(&token.Token{Type: token.TypeNumber}))
	assert.False(t, f(&token.Token{Type: token.TypeColor, Attributes: token.Attributes{Category: "modes"}}))
}

func TestApply_NilAdmitsAll(t *testing.T) {
	tokens := []*token.Token{{Name: "a"}, {Name: "b"}}
	assert.Len(t, filter.Apply(tokens, nil), 2)
}
