/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// FigmaExtensionKey is the extensions key written by the Figma design tokens exporter.
const FigmaExtensionKey = "org.lukasoppermann.figmaDesignTokens"

// PrimitivesCollection is the Figma variable collection holding base-level values.
const PrimitivesCollection = "Primitives"

// Collection returns the Figma variable collection the token was exported
// from, or "" when the token carries no such provenance.
func (t *Token) Collection() string {
	ext, ok := t.Extensions[FigmaExtensionKey].(map[string]any)
	if !ok {
		return ""
	}
	collection, _ := ext["collection"].(string)
	return collection
}

// IsPrimitive reports whether the token belongs to the Primitives collection.
func (t *Token) IsPrimitive() bool {
	return strings.EqualFold(t.Collection(), PrimitivesCollection)
}
