/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/tokenforge/token"
)

func TestToken_DotPath(t *testing.T) {
	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{
			name:     "simple path",
			path:     []string{"color", "primary"},
			expected: "color.primary",
		},
		{
			name:     "single element",
			path:     []string{"color"},
			expected: "color",
		},
		{
			name:     "empty path",
			path:     nil,
			expected: "",
		},
		{
			name:     "deep path",
			path:     []string{"color", "brand", "primary", "base"},
			expected: "color.brand.primary.base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := token.Token{Path: tt.path}
			if got := tok.DotPath(); got != tt.expected {
				t.Errorf("Token.DotPath() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestToken_SourceSegments(t *testing.T) {
	tests := []struct {
		name     string
		token    token.Token
		expected []string
	}{
		{
			name:     "path wins over name",
			token:    token.Token{Name: "x/y", Path: []string{"color", "brand"}},
			expected: []string{"color", "brand"},
		},
		{
			name:     "legacy slash name",
			token:    token.Token{Name: "color/brand/primary"},
			expected: []string{"color", "brand", "primary"},
		},
		{
			name:     "nothing to resolve",
			token:    token.Token{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.token.SourceSegments()
			if len(got) != len(tt.expected) {
				t.Fatalf("SourceSegments() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("SourceSegments()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestToken_Clone(t *testing.T) {
	orig := &token.Token{
		Name: "shadow",
		Path: []string{"effect", "shadow"},
		Type: token.TypeCustomShadow,
		Value: map[string]any{
			"color":   "#000000",
			"offsets": []any{1, 2},
		},
		Attributes: token.Attributes{Category: "effect"},
		Extensions: map[string]any{
			token.FigmaExtensionKey: map[string]any{"collection": "Primitives"},
		},
	}

	c := orig.Clone()
	c.Path[0] = "changed"
	c.Value.(map[string]any)["color"] = "#ffffff"
	c.Value.(map[string]any)["offsets"].([]any)[0] = 99
	c.Extensions[token.FigmaExtensionKey].(map[string]any)["collection"] = "Semantic"
	c.Attributes.Category = "other"

	if orig.Path[0] != "effect" {
		t.Errorf("clone shares Path with original")
	}
	if orig.Value.(map[string]any)["color"] != "#000000" {
		t.Errorf("clone shares Value map with original")
	}
	if orig.Value.(map[string]any)["offsets"].([]any)[0] != 1 {
		t.Errorf("clone shares nested slice with original")
	}
	if !orig.IsPrimitive() {
		t.Errorf("clone shares Extensions with original")
	}
	if orig.Attributes.Category != "effect" {
		t.Errorf("clone shares Attributes with original")
	}
}

func TestCloneAll_PreservesOrder(t *testing.T) {
	tokens := []*token.Token{{Name: "b"}, {Name: "a"}, {Name: "c"}}
	clones := token.CloneAll(tokens)
	for i := range tokens {
		if clones[i] == tokens[i] {
			t.Errorf("clone %d is the same pointer as the original", i)
		}
		if clones[i].Name != tokens[i].Name {
			t.Errorf("clone %d = %q, want %q", i, clones[i].Name, tokens[i].Name)
		}
	}
}

func TestToken_IsPrimitive(t *testing.T) {
	tests := []struct {
		name       string
		extensions map[string]any
		expected   bool
	}{
		{
			name: "primitives collection",
			extensions: map[string]any{
				token.FigmaExtensionKey: map[string]any{"collection": "Primitives"},
			},
			expected: true,
		},
		{
			name: "case-insensitive",
			extensions: map[string]any{
				token.FigmaExtensionKey: map[string]any{"collection": "primitives"},
			},
			expected: true,
		},
		{
			name: "other collection",
			extensions: map[string]any{
				token.FigmaExtensionKey: map[string]any{"collection": "Semantic"},
			},
			expected: false,
		},
		{
			name:       "foreign extension",
			extensions: map[string]any{"com.example": map[string]any{"collection": "Primitives"}},
			expected:   false,
		},
		{
			name:     "no extensions",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := token.Token{Extensions: tt.extensions}
			if got := tok.IsPrimitive(); got != tt.expected {
				t.Errorf("IsPrimitive() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAttributes_Merge(t *testing.T) {
	declared := token.Attributes{Category: "Modes"}
	merged := declared.Merge(token.Attributes{Category: "color", Type: "brand", Item: "primary"})

	if merged.Category != "Modes" {
		t.Errorf("declared category was overridden: %q", merged.Category)
	}
	if merged.Type != "brand" || merged.Item != "primary" {
		t.Errorf("defaults not applied: %+v", merged)
	}
	if !merged.IsCategory(token.CategoryModes) {
		t.Errorf("IsCategory should ignore case")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "#1a2b3c", "#1a2b3c"},
		{"integer float", 16.0, "16"},
		{"fraction", 1.5, "1.5"},
		{"int", 4, "4"},
		{"zero", 0, "0"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"slice", []any{"Inter", "sans-serif"}, "Inter, sans-serif"},
		{"map", map[string]any{"b": 2, "a": "x"}, `{"a":"x","b":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.ValueString(tt.value); got != tt.expected {
				t.Errorf("ValueString(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestNumericValue(t *testing.T) {
	tests := []struct {
		value    any
		expected float64
		ok       bool
	}{
		{4, 4, true},
		{2.5, 2.5, true},
		{"12", 12, true},
		{" 0 ", 0, true},
		{"4px", 0, false},
		{"{size.base}", 0, false},
		{nil, 0, false},
		{map[string]any{}, 0, false},
	}

	for _, tt := range tests {
		got, ok := token.NumericValue(tt.value)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("NumericValue(%v) = (%v, %v), want (%v, %v)", tt.value, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestParseCurlyBraceRef(t *testing.T) {
	tests := []struct {
		value    string
		path     string
		expected bool
	}{
		{"{color.base.red}", "color.base.red", true},
		{"  {color.base.red}", "", false},
		{"1px solid {color.base.red}", "", false},
		{"#ff0000", "", false},
	}

	for _, tt := range tests {
		path, ok := token.ParseCurlyBraceRef(tt.value)
		if ok != tt.expected || path != tt.path {
			t.Errorf("ParseCurlyBraceRef(%q) = (%q, %v), want (%q, %v)", tt.value, path, ok, tt.path, tt.expected)
		}
	}
}

func TestExtractAllRefs(t *testing.T) {
	refs := token.ExtractAllRefs("{size.x} {size.y} {color.shadow}")
	expected := []string{"size.x", "size.y", "color.shadow"}
	if len(refs) != len(expected) {
		t.Fatalf("ExtractAllRefs() = %v, want %v", refs, expected)
	}
	for i := range refs {
		if refs[i] != expected[i] {
			t.Errorf("ExtractAllRefs()[%d] = %q, want %q", i, refs[i], expected[i])
		}
	}

	replaced := token.ReplaceRefs("{size.x} solid", func(path string) string { return "<" + path + ">" })
	if replaced != "<size.x> solid" {
		t.Errorf("ReplaceRefs() = %q", replaced)
	}
}
