/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import "bennypowers.dev/tokenforge/token"

// nonZeroNumber reports whether v is a number, or a numeric string, other than zero.
// Strings that already carry a unit ("16px") or a reference are not numbers.
func nonZeroNumber(v any) (float64, bool) {
	n, ok := token.NumericValue(v)
	return n, ok && n != 0
}

// SizePx is "size/px": pixel-unit or dimension-typed numbers get a px suffix.
var SizePx = Transform{
	Name: "size/px",
	Kind: KindValue,
	Matcher: func(tok *token.Token) bool {
		if tok.Unit != token.UnitPixel && tok.Type != token.TypeDimension {
			return false
		}
		_, ok := nonZeroNumber(tok.Value)
		return ok
	},
	Value: func(tok *token.Token) any {
		n, _ := token.NumericValue(tok.Value)
		return token.ValueString(n) + "px"
	},
}

// SizePercent is "size/percent": percent-unit numbers get a % suffix.
var SizePercent = Transform{
	Name: "size/percent",
	Kind: KindValue,
	Matcher: func(tok *token.Token) bool {
		if tok.Unit != token.UnitPercent {
			return false
		}
		_, ok := nonZeroNumber(tok.Value)
		return ok
	},
	Value: func(tok *token.Token) any {
		n, _ := token.NumericValue(tok.Value)
		return token.ValueString(n) + "%"
	},
}

// SizeDp is "size/dp": the Android counterpart of size/px, suffixing
// density-independent pixels.
var SizeDp = Transform{
	Name:    "size/dp",
	Kind:    KindValue,
	Matcher: SizePx.Matcher,
	Value: func(tok *token.Token) any {
		n, _ := token.NumericValue(tok.Value)
		return token.ValueString(n) + "dp"
	},
}
