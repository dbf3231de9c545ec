/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"slices"
	"strings"

	"bennypowers.dev/tokenforge/token"
)

// Formatter defines the interface for output formatters.
// Formatters emit tokens in the order given and add no file header.
type Formatter interface {
	// Format converts tokens to the target format.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Selector is the CSS rule selector. Empty means ":root".
	Selector string
}

// CommentStyle selects the comment syntax for file headers.
type CommentStyle int

const (
	// CStyleComments wraps the header in a /* */ block.
	CStyleComments CommentStyle = iota
	// SCSSComments prefixes each header line with //.
	SCSSComments
	// XMLComments wraps the header in <!-- -->.
	XMLComments
	// NoComments is for formats without comment syntax, such as JSON.
	NoComments
)

// FormatHeader renders header text as a comment followed by a blank line.
// Returns "" for empty text or formats without comments.
func FormatHeader(text string, style CommentStyle) string {
	text = strings.TrimRight(text, "\n")
	if text == "" || style == NoComments {
		return ""
	}

	lines := strings.Split(text, "\n")
	var sb strings.Builder
	switch style {
	case SCSSComments:
		for _, line := range lines {
			sb.WriteString(strings.TrimRight("// "+line, " "))
			sb.WriteString("\n")
		}
	case XMLComments:
		sb.WriteString("<!--\n")
		for _, line := range lines {
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("-->\n")
	default:
		sb.WriteString("/*\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(" * "+line, " "))
			sb.WriteString("\n")
		}
		sb.WriteString(" */\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// SortTokens returns a copy of tokens sorted by name.
func SortTokens(tokens []*token.Token) []*token.Token {
	sorted := slices.Clone(tokens)
	slices.SortStableFunc(sorted, func(a, b *token.Token) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
