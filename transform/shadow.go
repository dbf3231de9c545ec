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

// shadowLength renders a shadow offset, blur or spread.
// Numbers are pixels; strings are used as written.
func shadowLength(v any) string {
	if v == nil {
		return "0"
	}
	if n, ok := token.NumericValue(v); ok {
		if _, isString := v.(string); !isString {
			if n == 0 {
				return "0"
			}
			return token.ValueString(n) + "px"
		}
	}
	return token.ValueString(v)
}

// CSSShadow renders one shadow object as a box-shadow layer.
func CSSShadow(shadow map[string]any) string {
	parts := make([]string, 0, 6)
	if t, _ := shadow["shadowType"].(string); t == "innerShadow" {
		parts = append(parts, "inset")
	}
	blur := shadow["radius"]
	if blur == nil {
		blur = shadow["blur"]
	}
	parts = append(parts,
		shadowLength(shadow["offsetX"]),
		shadowLength(shadow["offsetY"]),
		shadowLength(blur),
		shadowLength(shadow["spread"]),
	)
	if color := token.ValueString(shadow["color"]); color != "" {
		parts = append(parts, color)
	}
	return strings.Join(parts, " ")
}

// shadowLayers returns the shadow objects of a value: one object or a list of them.
func shadowLayers(v any) ([]map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return []map[string]any{x}, true
	case []any:
		layers := make([]map[string]any, 0, len(x))
		for _, item := range x {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			layers = append(layers, m)
		}
		return layers, len(layers) > 0
	default:
		return nil, false
	}
}

// ShadowCSS is "shadow/css": custom-shadow objects become box-shadow syntax.
var ShadowCSS = Transform{
	Name: "shadow/css",
	Kind: KindValue,
	Matcher: func(tok *token.Token) bool {
		if tok.Type != token.TypeCustomShadow {
			return false
		}
		_, ok := shadowLayers(tok.Value)
		return ok
	},
	Value: func(tok *token.Token) any {
		layers, _ := shadowLayers(tok.Value)
		rendered := make([]string, len(layers))
		for i, layer := range layers {
			rendered[i] = CSSShadow(layer)
		}
		return strings.Join(rendered, ", ")
	},
}
