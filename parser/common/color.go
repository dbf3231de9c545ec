/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides shared utilities for token parsing.
package common

import (
	"fmt"
	"slices"
	"strings"
)

// AlphaThreshold is the value below which alpha is included in CSS output.
// Values >= 0.999 are treated as fully opaque to avoid unnecessary alpha channels.
const AlphaThreshold = 0.999

// nativeColorFunctions are color spaces with their own CSS function,
// more widely supported than color().
var nativeColorFunctions = map[string]bool{
	"hsl":   true,
	"hwb":   true,
	"lab":   true,
	"lch":   true,
	"oklab": true,
	"oklch": true,
}

// StructuredColor is a DTCG structured color value.
type StructuredColor struct {
	ColorSpace string
	Components []any // float64 or the "none" keyword
	Alpha      *float64
	Hex        string
}

// ParseStructuredColor reads a {colorSpace, components, alpha, hex} object.
func ParseStructuredColor(obj map[string]any) (*StructuredColor, error) {
	colorSpace, ok := obj["colorSpace"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid colorSpace field")
	}

	raw, ok := obj["components"].([]any)
	if !ok {
		return nil, fmt.Errorf("components must be an array")
	}
	components := slices.Clone(raw)

	for i, comp := range components {
		switch v := comp.(type) {
		case float64:
		case int:
			components[i] = float64(v)
		case string:
			if v != "none" {
				return nil, fmt.Errorf("component[%d]: invalid string %q; only \"none\" allowed", i, v)
			}
		default:
			return nil, fmt.Errorf("component[%d]: invalid type %T", i, comp)
		}
	}

	c := &StructuredColor{
		ColorSpace: colorSpace,
		Components: components,
	}
	switch a := obj["alpha"].(type) {
	case float64:
		c.Alpha = &a
	case int:
		f := float64(a)
		c.Alpha = &f
	}
	if hex, ok := obj["hex"].(string); ok {
		c.Hex = hex
	}
	return c, nil
}

// ToCSS returns the CSS representation of the color.
func (c *StructuredColor) ToCSS() string {
	if c.Hex != "" {
		return c.Hex
	}

	if c.ColorSpace == "srgb" && c.canConvertToHex() {
		return c.toHex()
	}

	parts := make([]string, len(c.Components))
	for i, comp := range c.Components {
		if v, ok := comp.(float64); ok {
			parts[i] = fmt.Sprintf("%.4g", v)
		} else {
			parts[i] = fmt.Sprint(comp)
		}
	}
	compStr := strings.Join(parts, " ")

	fn := "color(" + c.ColorSpace + " "
	if nativeColorFunctions[c.ColorSpace] {
		fn = c.ColorSpace + "("
	}
	if c.Alpha != nil && *c.Alpha < AlphaThreshold {
		return fmt.Sprintf("%s%s / %.4g)", fn, compStr, *c.Alpha)
	}
	return fn + compStr + ")"
}

// canConvertToHex requires exactly 3 numeric components and an opaque alpha.
func (c *StructuredColor) canConvertToHex() bool {
	if len(c.Components) != 3 {
		return false
	}
	if c.Alpha != nil && *c.Alpha < AlphaThreshold {
		return false
	}
	for _, comp := range c.Components {
		if _, ok := comp.(float64); !ok {
			return false
		}
	}
	return true
}

// toHex converts sRGB components in the 0-1 range to #rrggbb.
func (c *StructuredColor) toHex() string {
	r := clamp(int(c.Components[0].(float64)*255+0.5), 0, 255)
	g := clamp(int(c.Components[1].(float64)*255+0.5), 0, 255)
	b := clamp(int(c.Components[2].(float64)*255+0.5), 0, 255)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}

// NormalizeColor turns a color token value into a CSS color string.
// Strings pass through unchanged; structured colors are rendered with ToCSS.
func NormalizeColor(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case map[string]any:
		c, err := ParseStructuredColor(v)
		if err != nil {
			return "", err
		}
		return c.ToCSS(), nil
	default:
		return "", fmt.Errorf("unsupported color value of type %T", value)
	}
}
