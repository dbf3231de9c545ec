/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package android provides Android XML resource formatting for design tokens.
package android

import (
	"fmt"
	"math"
	"strings"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/token"
)

// XMLDeclaration opens every resource file.
const XMLDeclaration = `<?xml version="1.0" encoding="utf-8"?>`

// Formatter outputs Android-style XML resources.
type Formatter struct{}

// New creates a new Android formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to Android XML resource format, sorted by name.
func (f *Formatter) Format(tokens []*token.Token, _ formatter.Options) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(XMLDeclaration)
	sb.WriteString("\n<resources>\n")

	for _, tok := range formatter.SortTokens(tokens) {
		name := formatter.EscapeXML(tok.Name)
		value := formatter.EscapeXML(token.ValueString(tok.Value))
		if isFraction(tok) {
			fmt.Fprintf(&sb, "    <item name=\"%s\" format=\"float\" type=\"dimen\">%s</item>\n", name, value)
			continue
		}
		element := xmlType(tok.Type)
		fmt.Fprintf(&sb, "    <%s name=\"%s\">%s</%s>\n", element, name, value, element)
	}

	sb.WriteString("</resources>")
	return []byte(sb.String()), nil
}

// isFraction reports whether a number token has a fractional value,
// which Android cannot hold in an <integer>.
func isFraction(tok *token.Token) bool {
	if tok.Type != token.TypeNumber {
		return false
	}
	n, ok := token.NumericValue(tok.Value)
	return ok && n != math.Trunc(n)
}

func xmlType(tokenType string) string {
	switch tokenType {
	case token.TypeColor:
		return "color"
	case token.TypeDimension, token.TypeCustomSpacing, token.TypeCustomRadius:
		return "dimen"
	case token.TypeNumber:
		return "integer"
	case token.TypeBoolean:
		return "bool"
	default:
		return "string"
	}
}
