/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import "bennypowers.dev/tokenforge/token"

// CTIAttributes derives category/type/item/subitem/state from the first five
// source segments. Attributes the token declares are kept.
func CTIAttributes(tok *token.Token) token.Attributes {
	segments := tok.SourceSegments()
	at := func(i int) string {
		if i < len(segments) {
			return segments[i]
		}
		return ""
	}
	derived := token.Attributes{
		Category: at(0),
		Type:     at(1),
		Item:     at(2),
		Subitem:  at(3),
		State:    at(4),
	}
	return tok.Attributes.Merge(derived)
}

// AttributeCTI is "attribute/cti".
var AttributeCTI = Transform{
	Name:       "attribute/cti",
	Kind:       KindAttribute,
	Attributes: CTIAttributes,
}
