/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert maps format keys to token formatters.
package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenforge/convert/formatter"
	"bennypowers.dev/tokenforge/convert/formatter/android"
	"bennypowers.dev/tokenforge/convert/formatter/css"
	"bennypowers.dev/tokenforge/convert/formatter/flatjson"
	"bennypowers.dev/tokenforge/convert/formatter/less"
	"bennypowers.dev/tokenforge/convert/formatter/nestedjson"
	"bennypowers.dev/tokenforge/convert/formatter/scss"
	"bennypowers.dev/tokenforge/schema"
)

// Format is the registry key of an output format.
type Format string

const (
	// FormatSCSS outputs SCSS variables.
	FormatSCSS Format = "scss/variables"

	// FormatLess outputs Less variables.
	FormatLess Format = "less/variables"

	// FormatCSS outputs CSS custom properties in a :root rule.
	FormatCSS Format = "css/variables"

	// FormatCSSRGB outputs CSS custom properties with RGB companions for
	// primitive colors.
	FormatCSSRGB Format = "css/variables-rgb"

	// FormatFlatJSON outputs a flat name-to-value JSON object.
	FormatFlatJSON Format = "json/flat"

	// FormatNestedJSON outputs JSON nested by token path.
	FormatNestedJSON Format = "json/nested"

	// FormatAndroid outputs Android XML resources.
	FormatAndroid Format = "android/resources"
)

// ValidFormats returns all valid format keys.
func ValidFormats() []string {
	return []string{
		string(FormatSCSS),
		string(FormatLess),
		string(FormatCSS),
		string(FormatCSSRGB),
		string(FormatFlatJSON),
		string(FormatNestedJSON),
		string(FormatAndroid),
	}
}

// ParseFormat converts a format key or alias to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "scss/variables", "scss", "sass":
		return FormatSCSS, nil
	case "less/variables", "less":
		return FormatLess, nil
	case "css/variables", "css":
		return FormatCSS, nil
	case "css/variables-rgb", "css-rgb":
		return FormatCSSRGB, nil
	case "json/flat", "json", "flat":
		return FormatFlatJSON, nil
	case "json/nested", "nested":
		return FormatNestedJSON, nil
	case "android/resources", "android", "xml":
		return FormatAndroid, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", schema.ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// CommentStyleFor returns the file header comment style of a format.
func CommentStyleFor(format Format) formatter.CommentStyle {
	switch format {
	case FormatSCSS, FormatLess:
		return formatter.SCSSComments
	case FormatAndroid:
		return formatter.XMLComments
	case FormatFlatJSON, FormatNestedJSON:
		return formatter.NoComments
	default:
		return formatter.CStyleComments
	}
}

// New returns the formatter for a format.
func New(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatSCSS:
		return scss.New(), nil
	case FormatLess:
		return less.New(), nil
	case FormatCSS:
		return css.New(css.Options{}), nil
	case FormatCSSRGB:
		return css.New(css.Options{RGBCompanions: true}), nil
	case FormatFlatJSON:
		return flatjson.New(), nil
	case FormatNestedJSON:
		return nestedjson.New(), nil
	case FormatAndroid:
		return android.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownFormat, format)
	}
}

// WithHeader prefixes content with a header comment. XML declarations stay
// on the first line, as XML requires.
func WithHeader(content []byte, header string, style formatter.CommentStyle) []byte {
	comment := formatter.FormatHeader(header, style)
	if comment == "" {
		return content
	}
	if style == formatter.XMLComments && strings.HasPrefix(string(content), "<?xml") {
		decl, rest, _ := strings.Cut(string(content), "\n")
		return []byte(decl + "\n" + comment + rest)
	}
	return []byte(comment + string(content))
}
